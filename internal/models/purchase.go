package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Purchase records a completed buy. TransactionID is the payment provider's
// reference created upstream by the payment-intent flow.
type Purchase struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail     string             `json:"userEmail" bson:"userEmail"`
	ProductID     string             `json:"productId" bson:"productId"`
	ProductName   string             `json:"productName,omitempty" bson:"productName,omitempty"`
	MarketName    string             `json:"marketName,omitempty" bson:"marketName,omitempty"`
	Price         string             `json:"price,omitempty" bson:"price,omitempty"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	BuyDate       string             `json:"buyDate,omitempty" bson:"buyDate,omitempty"`
}
