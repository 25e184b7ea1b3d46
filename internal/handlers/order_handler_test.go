package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	provider := &fakePaymentProvider{clientSecret: "pi_123_secret_456"}
	h := NewOrderHandler(&fakePurchaseStore{}, provider)
	router := gin.New()
	router.POST("/create-payment-intent", h.CreatePaymentIntent)

	w := performRequest(router, "POST", "/create-payment-intent", gin.H{"price": 19.99})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_123_secret_456", decodeBody(w)["clientSecret"])
	assert.Equal(t, int64(1999), provider.gotAmount)
}

func TestCreatePaymentIntentRequiresPrice(t *testing.T) {
	h := NewOrderHandler(&fakePurchaseStore{}, &fakePaymentProvider{})
	router := gin.New()
	router.POST("/create-payment-intent", h.CreatePaymentIntent)

	w := performRequest(router, "POST", "/create-payment-intent", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuyProductValidation(t *testing.T) {
	store := &fakePurchaseStore{}
	h := NewOrderHandler(store, &fakePaymentProvider{})
	router := gin.New()
	router.POST("/buy-product", h.BuyProduct)

	w := performRequest(router, "POST", "/buy-product", gin.H{
		"userEmail": "a@x.com",
		"productId": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.purchases)

	w = performRequest(router, "POST", "/buy-product", gin.H{
		"userEmail":     "a@x.com",
		"productId":     "p1",
		"transactionId": "txn_789",
		"buyDate":       "2025-08-20",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(w)["insertedId"])
	require.Len(t, store.purchases, 1)
	assert.Equal(t, "txn_789", store.purchases[0].TransactionID)
}
