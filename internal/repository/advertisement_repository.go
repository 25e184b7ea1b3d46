package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"daily-market/internal/models"
)

type AdvertisementRepository struct {
	collection *mongo.Collection
}

func NewAdvertisementRepository(collection *mongo.Collection) *AdvertisementRepository {
	return &AdvertisementRepository{collection: collection}
}

// Insert stores a new advertisement. Status defaults to pending and
// CreatedAt is stamped server-side when the caller omits it.
func (r *AdvertisementRepository) Insert(ctx context.Context, ad *models.Advertisement) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ad.ID = primitive.NewObjectID()
	if ad.Status == "" {
		ad.Status = models.StatusPending
	}
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, ad); err != nil {
		return "", errors.Wrap(err, "insert advertisement")
	}
	return ad.ID.Hex(), nil
}

// FindByVendor lists a vendor's advertisements.
func (r *AdvertisementRepository) FindByVendor(ctx context.Context, email string) ([]models.Advertisement, error) {
	return r.find(ctx, bson.M{"vendorEmail": email}, nil)
}

// FindAll lists every advertisement, newest first.
func (r *AdvertisementRepository) FindAll(ctx context.Context) ([]models.Advertisement, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "createdAt", Value: -1}})
}

// FindApproved lists approved advertisements.
func (r *AdvertisementRepository) FindApproved(ctx context.Context) ([]models.Advertisement, error) {
	return r.find(ctx, bson.M{"status": models.StatusApproved}, nil)
}

// Update merges the given fields into an advertisement.
func (r *AdvertisementRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return errors.Wrap(err, "update advertisement")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus moves an advertisement through the moderation state machine.
func (r *AdvertisementRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

// Delete removes an advertisement permanently.
func (r *AdvertisementRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return errors.Wrap(err, "delete advertisement")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of advertisements.
func (r *AdvertisementRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count advertisements")
	}
	return count, nil
}

func (r *AdvertisementRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Advertisement, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find()
	if sort != nil {
		findOptions.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find advertisements")
	}
	defer cursor.Close(ctx)

	var ads []models.Advertisement
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, errors.Wrap(err, "decode advertisements")
	}
	return ads, nil
}
