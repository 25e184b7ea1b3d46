package handlers

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"daily-market/internal/models"
	"daily-market/internal/repository"
)

// In-memory stores backing the handler tests.

type fakeUserStore struct {
	users []*models.User
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) Search(context.Context, string) ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user.ID.Hex(), nil
}

func (s *fakeUserStore) UpdateRole(_ context.Context, id, role string) error {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			u.Role = role
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeUserStore) Count(context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type fakeProductStore struct {
	products map[string]*models.Product
}

func newFakeProductStore(products ...*models.Product) *fakeProductStore {
	s := &fakeProductStore{products: make(map[string]*models.Product)}
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		s.products[p.ID.Hex()] = p
	}
	return s
}

func (s *fakeProductStore) Insert(_ context.Context, product *models.Product) (string, error) {
	product.ID = primitive.NewObjectID()
	if product.Status == "" {
		product.Status = models.StatusPending
	}
	s.products[product.ID.Hex()] = product
	return product.ID.Hex(), nil
}

func (s *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (s *fakeProductStore) FindByVendor(_ context.Context, email string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.VendorEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) FindAll(context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProductStore) FindApproved(_ context.Context, limit int64) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.Status == models.StatusApproved {
			out = append(out, *p)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeProductStore) FindPublic(ctx context.Context, _ repository.PublicProductQuery) ([]models.Product, error) {
	return s.FindApproved(ctx, 0)
}

func (s *fakeProductStore) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) Update(_ context.Context, id string, fields map[string]interface{}, entry *models.PriceEntry) error {
	p, ok := s.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["pricePerUnit"].(string); ok {
		p.PricePerUnit = v
	}
	if v, ok := fields["itemName"].(string); ok {
		p.ItemName = v
	}
	if v, ok := fields["date"].(string); ok {
		p.Date = v
	}
	if entry != nil {
		p.Prices = append(p.Prices, *entry)
	}
	return nil
}

func (s *fakeProductStore) SetStatus(_ context.Context, id, status, reason string) error {
	p, ok := s.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Status = status
	p.RejectedReason = reason
	return nil
}

func (s *fakeProductStore) Delete(_ context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *fakeProductStore) Count(context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

type fakeAdStore struct {
	ads []*models.Advertisement
}

func (s *fakeAdStore) Insert(_ context.Context, ad *models.Advertisement) (string, error) {
	ad.ID = primitive.NewObjectID()
	if ad.Status == "" {
		ad.Status = models.StatusPending
	}
	s.ads = append(s.ads, ad)
	return ad.ID.Hex(), nil
}

func (s *fakeAdStore) FindByVendor(_ context.Context, email string) ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, ad := range s.ads {
		if ad.VendorEmail == email {
			out = append(out, *ad)
		}
	}
	return out, nil
}

func (s *fakeAdStore) FindAll(context.Context) ([]models.Advertisement, error) {
	out := make([]models.Advertisement, 0, len(s.ads))
	for _, ad := range s.ads {
		out = append(out, *ad)
	}
	return out, nil
}

func (s *fakeAdStore) FindApproved(context.Context) ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, ad := range s.ads {
		if ad.Status == models.StatusApproved {
			out = append(out, *ad)
		}
	}
	return out, nil
}

func (s *fakeAdStore) Update(_ context.Context, id string, fields map[string]interface{}) error {
	for _, ad := range s.ads {
		if ad.ID.Hex() == id {
			if v, ok := fields["title"].(string); ok {
				ad.Title = v
			}
			if v, ok := fields["status"].(string); ok {
				ad.Status = v
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeAdStore) SetStatus(ctx context.Context, id, status string) error {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *fakeAdStore) Delete(_ context.Context, id string) error {
	for i, ad := range s.ads {
		if ad.ID.Hex() == id {
			s.ads = append(s.ads[:i], s.ads[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeAdStore) Count(context.Context) (int64, error) {
	return int64(len(s.ads)), nil
}

type fakeReviewStore struct {
	reviews []*models.Review
}

func (s *fakeReviewStore) Insert(_ context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, review)
	return review.ID.Hex(), nil
}

func (s *fakeReviewStore) FindByProduct(_ context.Context, productID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeReviewStore) TopRated(_ context.Context, limit int64) ([]models.Review, error) {
	out := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeWatchlistStore struct {
	entries []*models.WatchlistEntry
}

func (s *fakeWatchlistStore) Exists(_ context.Context, userEmail, productID, marketName string) (bool, error) {
	for _, e := range s.entries {
		if e.UserEmail == userEmail && e.ProductID == productID && e.MarketName == marketName {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeWatchlistStore) Insert(_ context.Context, entry *models.WatchlistEntry) (string, error) {
	entry.ID = primitive.NewObjectID()
	s.entries = append(s.entries, entry)
	return entry.ID.Hex(), nil
}

func (s *fakeWatchlistStore) FindByEmail(_ context.Context, email string) ([]models.WatchlistEntry, error) {
	var out []models.WatchlistEntry
	for _, e := range s.entries {
		if e.UserEmail == email {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeWatchlistStore) FindByProductID(_ context.Context, productID string) (*models.WatchlistEntry, error) {
	for _, e := range s.entries {
		if e.ProductID == productID {
			return e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeWatchlistStore) DeleteByProductID(_ context.Context, productID string) error {
	for i, e := range s.entries {
		if e.ProductID == productID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeWatchlistStore) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for _, e := range s.entries {
		if e.UserEmail == email {
			count++
		}
	}
	return count, nil
}

type fakePurchaseStore struct {
	purchases []*models.Purchase
}

func (s *fakePurchaseStore) Insert(_ context.Context, purchase *models.Purchase) (string, error) {
	purchase.ID = primitive.NewObjectID()
	s.purchases = append(s.purchases, purchase)
	return purchase.ID.Hex(), nil
}

func (s *fakePurchaseStore) FindByEmail(_ context.Context, email string) ([]models.Purchase, error) {
	var out []models.Purchase
	for _, p := range s.purchases {
		if p.UserEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakePurchaseStore) FindAll(context.Context) ([]models.Purchase, error) {
	out := make([]models.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakePurchaseStore) Count(context.Context) (int64, error) {
	return int64(len(s.purchases)), nil
}

func (s *fakePurchaseStore) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for _, p := range s.purchases {
		if p.UserEmail == email {
			count++
		}
	}
	return count, nil
}

type fakePaymentProvider struct {
	clientSecret string
	err          error
	gotAmount    int64
}

func (p *fakePaymentProvider) CreateIntent(_ context.Context, amountCents int64) (string, error) {
	p.gotAmount = amountCents
	return p.clientSecret, p.err
}

type fakeVerifier struct {
	email string
	err   error
}

func (v *fakeVerifier) Verify(context.Context, string) (string, error) {
	return v.email, v.err
}
