package handlers

import (
	"context"

	"daily-market/internal/models"
	"daily-market/internal/repository"
)

// Store interfaces consumed by the handlers. The Mongo repositories satisfy
// them in production; tests swap in in-memory fakes.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Search(ctx context.Context, search string) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	UpdateRole(ctx context.Context, id, role string) error
	Count(ctx context.Context) (int64, error)
}

type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) (string, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByVendor(ctx context.Context, email string) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindApproved(ctx context.Context, limit int64) ([]models.Product, error)
	FindPublic(ctx context.Context, query repository.PublicProductQuery) ([]models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	Update(ctx context.Context, id string, fields map[string]interface{}, entry *models.PriceEntry) error
	SetStatus(ctx context.Context, id, status, reason string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type AdvertisementStore interface {
	Insert(ctx context.Context, ad *models.Advertisement) (string, error)
	FindByVendor(ctx context.Context, email string) ([]models.Advertisement, error)
	FindAll(ctx context.Context) ([]models.Advertisement, error)
	FindApproved(ctx context.Context) ([]models.Advertisement, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) (string, error)
	FindByProduct(ctx context.Context, productID string) ([]models.Review, error)
	TopRated(ctx context.Context, limit int64) ([]models.Review, error)
}

type WatchlistStore interface {
	Exists(ctx context.Context, userEmail, productID, marketName string) (bool, error)
	Insert(ctx context.Context, entry *models.WatchlistEntry) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.WatchlistEntry, error)
	FindByProductID(ctx context.Context, productID string) (*models.WatchlistEntry, error)
	DeleteByProductID(ctx context.Context, productID string) error
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type PurchaseStore interface {
	Insert(ctx context.Context, purchase *models.Purchase) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.Purchase, error)
	FindAll(ctx context.Context) ([]models.Purchase, error)
	Count(ctx context.Context) (int64, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

// PaymentProvider creates a payment intent and returns its client secret.
// Satisfied by payments.StripeProvider.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}
