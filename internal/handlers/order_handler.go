package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-market/internal/models"
)

type OrderHandler struct {
	purchases PurchaseStore
	payments  PaymentProvider
}

func NewOrderHandler(purchases PurchaseStore, payments PaymentProvider) *OrderHandler {
	return &OrderHandler{purchases: purchases, payments: payments}
}

// POST /create-payment-intent
// Opens a card intent for the given dollar price; the frontend confirms it
// with the returned client secret.
func (h *OrderHandler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Round to the nearest cent; naive truncation turns 19.99*100 into 1998.
	amountCents := int64(math.Round(body.Price * 100))

	clientSecret, err := h.payments.CreateIntent(c.Request.Context(), amountCents)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment intent creation failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// POST /buy-product
// Records a purchase after the provider confirmed the payment upstream.
func (h *OrderHandler) BuyProduct(c *gin.Context) {
	var purchase models.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if purchase.UserEmail == "" || purchase.ProductID == "" || purchase.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	id, err := h.purchases.Insert(c.Request.Context(), &purchase)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record purchase", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GET /orders/:email (authenticated)
func (h *OrderHandler) UserOrders(c *gin.Context) {
	orders, err := h.purchases.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GET /orders (admin)
func (h *OrderHandler) AllOrders(c *gin.Context) {
	orders, err := h.purchases.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
