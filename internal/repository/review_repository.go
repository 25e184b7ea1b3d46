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

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(collection *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{collection: collection}
}

// Insert stores a review and returns its hex id.
func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	review.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return "", errors.Wrap(err, "insert review")
	}
	return review.ID.Hex(), nil
}

// FindByProduct lists a product's reviews, newest first.
func (r *ReviewRepository) FindByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"productId": productID}, bson.D{{Key: "date", Value: -1}}, 0)
}

// TopRated returns the highest-rated reviews, capped at limit.
func (r *ReviewRepository) TopRated(ctx context.Context, limit int64) ([]models.Review, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "rating", Value: -1}}, limit)
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(sort)
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find reviews")
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, errors.Wrap(err, "decode reviews")
	}
	return reviews, nil
}
