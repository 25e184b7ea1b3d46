package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review rates a product. ProductID is the product's hex id kept as a plain
// string, matching what the frontend submits.
type Review struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId" binding:"required"`
	Name      string             `json:"name" bson:"name" binding:"required"`
	Email     string             `json:"email" bson:"email" binding:"required"`
	Comment   string             `json:"comment" bson:"comment" binding:"required"`
	Rating    int                `json:"rating" bson:"rating" binding:"required"`
	Date      string             `json:"date,omitempty" bson:"date,omitempty"`
}
