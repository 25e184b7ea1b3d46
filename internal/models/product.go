package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Moderation states shared by products and advertisements.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PriceEntry is one point of a product's embedded price history.
// Dates are YYYY-MM-DD strings and are unique within a product.
type PriceEntry struct {
	Date  string  `json:"date" bson:"date"`
	Price float64 `json:"price" bson:"price"`
}

type Product struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VendorEmail       string             `json:"vendorEmail" bson:"vendorEmail"`
	VendorName        string             `json:"vendorName,omitempty" bson:"vendorName,omitempty"`
	MarketName        string             `json:"marketName" bson:"marketName"`
	MarketDescription string             `json:"marketDescription,omitempty" bson:"marketDescription,omitempty"`
	ItemName          string             `json:"itemName" bson:"itemName"`
	ItemDescription   string             `json:"itemDescription,omitempty" bson:"itemDescription,omitempty"`
	ProductImage      string             `json:"productImage,omitempty" bson:"productImage,omitempty"`
	Date              string             `json:"date" bson:"date"`
	Status            string             `json:"status" bson:"status"`
	PricePerUnit      string             `json:"pricePerUnit" bson:"pricePerUnit"`
	Prices            []PriceEntry       `json:"prices" bson:"prices"`
	RejectedReason    string             `json:"rejectedReason,omitempty" bson:"rejectedReason,omitempty"`
}

// LatestPrice returns the price of the newest history entry, or 0 when the
// history is empty. Entries are kept in submission order, newest last.
func (p *Product) LatestPrice() float64 {
	if len(p.Prices) == 0 {
		return 0
	}
	return p.Prices[len(p.Prices)-1].Price
}

// HasPriceFor reports whether the history already carries an entry for date.
func (p *Product) HasPriceFor(date string) bool {
	for _, entry := range p.Prices {
		if entry.Date == date {
			return true
		}
	}
	return false
}
