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

type PurchaseRepository struct {
	collection *mongo.Collection
}

func NewPurchaseRepository(collection *mongo.Collection) *PurchaseRepository {
	return &PurchaseRepository{collection: collection}
}

// Insert records a purchase and returns its hex id.
func (r *PurchaseRepository) Insert(ctx context.Context, purchase *models.Purchase) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	purchase.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, purchase); err != nil {
		return "", errors.Wrap(err, "insert purchase")
	}
	return purchase.ID.Hex(), nil
}

// FindByEmail lists a user's purchases, newest first.
func (r *PurchaseRepository) FindByEmail(ctx context.Context, email string) ([]models.Purchase, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

// FindAll lists every purchase, newest first.
func (r *PurchaseRepository) FindAll(ctx context.Context) ([]models.Purchase, error) {
	return r.find(ctx, bson.M{})
}

// Count returns the total number of purchases.
func (r *PurchaseRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count purchases")
	}
	return count, nil
}

// CountByEmail returns the number of purchases a user has made.
func (r *PurchaseRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"userEmail": email})
	if err != nil {
		return 0, errors.Wrap(err, "count purchases")
	}
	return count, nil
}

func (r *PurchaseRepository) find(ctx context.Context, filter bson.M) ([]models.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "buyDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find purchases")
	}
	defer cursor.Close(ctx)

	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, errors.Wrap(err, "decode purchases")
	}
	return purchases, nil
}
