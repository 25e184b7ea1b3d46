package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-market/internal/models"
)

func TestCreateReviewRequiresAllFields(t *testing.T) {
	store := &fakeReviewStore{}
	h := NewReviewHandler(store, newFakeProductStore())
	router := gin.New()
	router.POST("/reviews", h.CreateReview)

	w := performRequest(router, "POST", "/reviews", gin.H{
		"productId": "p1",
		"name":      "A",
		"email":     "a@x.com",
		// comment and rating missing
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.reviews)

	w = performRequest(router, "POST", "/reviews", gin.H{
		"productId": "p1",
		"name":      "A",
		"email":     "a@x.com",
		"comment":   "fresh and cheap",
		"rating":    5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.reviews, 1)
}

func TestBestSellers(t *testing.T) {
	good := &models.Product{ItemName: "Hilsa", Status: models.StatusApproved}
	better := &models.Product{ItemName: "Mango", Status: models.StatusApproved}
	unrated := &models.Product{ItemName: "Salt", Status: models.StatusApproved}
	products := newFakeProductStore(good, better, unrated)

	reviews := &fakeReviewStore{reviews: []*models.Review{
		{ProductID: good.ID.Hex(), Rating: 4},
		{ProductID: better.ID.Hex(), Rating: 5},
	}}

	h := NewReviewHandler(reviews, products)
	router := gin.New()
	router.GET("/api/products/best-sellers", h.BestSellers)

	w := performRequest(router, "GET", "/api/products/best-sellers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	sellers := decodeList(w)
	require.Len(t, sellers, 2)
	for _, seller := range sellers {
		assert.Contains(t, seller, "rating")
		assert.NotEqual(t, "Salt", seller["itemName"])
	}
}
