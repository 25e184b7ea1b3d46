package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WatchlistEntry is a user's saved product. The (UserEmail, ProductID,
// MarketName) triple is unique per entry.
type WatchlistEntry struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	ProductID   string             `json:"productId" bson:"productId"`
	ProductName string             `json:"productName,omitempty" bson:"productName,omitempty"`
	MarketName  string             `json:"marketName,omitempty" bson:"marketName,omitempty"`
}
