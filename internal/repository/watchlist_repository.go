package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"daily-market/internal/models"
)

type WatchlistRepository struct {
	collection *mongo.Collection
}

func NewWatchlistRepository(collection *mongo.Collection) *WatchlistRepository {
	return &WatchlistRepository{collection: collection}
}

// Exists reports whether the (userEmail, productId, marketName) triple is
// already on the watchlist.
func (r *WatchlistRepository) Exists(ctx context.Context, userEmail, productID, marketName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"userEmail":  userEmail,
		"productId":  productID,
		"marketName": marketName,
	}

	err := r.collection.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "check watchlist entry")
	}
	return true, nil
}

// Insert stores a watchlist entry and returns its hex id.
func (r *WatchlistRepository) Insert(ctx context.Context, entry *models.WatchlistEntry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return "", errors.Wrap(err, "insert watchlist entry")
	}
	return entry.ID.Hex(), nil
}

// FindByEmail lists a user's watchlist entries.
func (r *WatchlistRepository) FindByEmail(ctx context.Context, email string) ([]models.WatchlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, errors.Wrap(err, "find watchlist entries")
	}
	defer cursor.Close(ctx)

	var entries []models.WatchlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, errors.Wrap(err, "decode watchlist entries")
	}
	return entries, nil
}

// FindByProductID returns the entry saved for a product, or ErrNotFound.
// Removal keys on the product id the frontend holds, not the entry's own id.
func (r *WatchlistRepository) FindByProductID(ctx context.Context, productID string) (*models.WatchlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var entry models.WatchlistEntry
	err := r.collection.FindOne(ctx, bson.M{"productId": productID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find watchlist entry")
	}
	return &entry, nil
}

// DeleteByProductID removes the entry saved for a product.
func (r *WatchlistRepository) DeleteByProductID(ctx context.Context, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"productId": productID})
	if err != nil {
		return errors.Wrap(err, "delete watchlist entry")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByEmail returns the number of entries a user keeps.
func (r *WatchlistRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"userEmail": email})
	if err != nil {
		return 0, errors.Wrap(err, "count watchlist entries")
	}
	return count, nil
}
