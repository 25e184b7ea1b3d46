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

// PublicProductQuery filters the public approved-product listing. Sort is
// "asc" or "desc" for price ordering; anything else falls back to newest
// first. StartDate/EndDate bound the submission date when both are set.
type PublicProductQuery struct {
	Sort      string
	StartDate string
	EndDate   string
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

// Insert stores a new product and returns its hex id. Status defaults to
// pending when the caller leaves it empty.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	product.ID = primitive.NewObjectID()
	if product.Status == "" {
		product.Status = models.StatusPending
	}

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return "", errors.Wrap(err, "insert product")
	}
	return product.ID.Hex(), nil
}

// FindByID returns one product, ErrInvalidID for a malformed hex id, or
// ErrNotFound.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find product")
	}
	return &product, nil
}

// FindByVendor lists a vendor's products, newest submission first.
func (r *ProductRepository) FindByVendor(ctx context.Context, email string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"vendorEmail": email}, bson.D{{Key: "date", Value: -1}}, 0)
}

// FindAll lists every product, newest submission first.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "date", Value: -1}}, 0)
}

// FindApproved lists approved products, newest first, optionally limited.
func (r *ProductRepository) FindApproved(ctx context.Context, limit int64) ([]models.Product, error) {
	return r.find(ctx, bson.M{"status": models.StatusApproved}, bson.D{{Key: "date", Value: -1}}, limit)
}

// FindPublic runs the approved-listing pipeline: pricePerUnit is stored as a
// decimal string, so price ordering casts it with $toDouble first.
func (r *ProductRepository) FindPublic(ctx context.Context, query PublicProductQuery) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{"status": models.StatusApproved}
	if query.StartDate != "" && query.EndDate != "" {
		match["date"] = bson.M{"$gte": query.StartDate, "$lte": query.EndDate}
	}

	sort := bson.D{{Key: "date", Value: -1}}
	switch query.Sort {
	case "asc":
		sort = bson.D{{Key: "priceNumber", Value: 1}}
	case "desc":
		sort = bson.D{{Key: "priceNumber", Value: -1}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.M{"priceNumber": bson.M{"$toDouble": "$pricePerUnit"}}}},
		{{Key: "$sort", Value: sort}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate public products")
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode public products")
	}
	return products, nil
}

// FindByIDs returns the products whose hex ids appear in ids. Malformed ids
// are skipped rather than failing the whole lookup.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if objID, err := primitive.ObjectIDFromHex(id); err == nil {
			objIDs = append(objIDs, objID)
		}
	}
	if len(objIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": objIDs}}, nil, 0)
}

// Update overwrites the given scalar fields and, when entry is non-nil,
// appends it to the embedded price history. The date-dedup check happens in
// the handler beforehand; there is no cross-request transaction around it.
func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}, entry *models.PriceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{"$set": fields}
	if entry != nil {
		update["$push"] = bson.M{"prices": entry}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus moves a product through the moderation state machine. Approving
// clears any previous rejection reason.
func (r *ProductRepository) SetStatus(ctx context.Context, id, status, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{"$set": bson.M{"status": status, "rejectedReason": reason}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return errors.Wrap(err, "set product status")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product permanently.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return count, nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find()
	if sort != nil {
		findOptions.SetSort(sort)
	}
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}
