package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-market/internal/models"
)

const bestSellerLimit = 3

type ReviewHandler struct {
	reviews  ReviewStore
	products ProductStore
}

func NewReviewHandler(reviews ReviewStore, products ProductStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, products: products}
}

// GET /reviews/:productId
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.reviews.FindByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// POST /reviews (authenticated)
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	id, err := h.reviews.Insert(c.Request.Context(), &review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to post review", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

type bestSeller struct {
	models.Product
	Rating *int `json:"rating"`
}

// GET /api/products/best-sellers
// Products behind the three highest-rated reviews, each carrying its review's
// rating.
func (h *ReviewHandler) BestSellers(c *gin.Context) {
	topReviews, err := h.reviews.TopRated(c.Request.Context(), bestSellerLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	productIDs := make([]string, 0, len(topReviews))
	for _, review := range topReviews {
		productIDs = append(productIDs, review.ProductID)
	}

	products, err := h.products.FindByIDs(c.Request.Context(), productIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	sellers := make([]bestSeller, 0, len(products))
	for _, product := range products {
		seller := bestSeller{Product: product}
		for _, review := range topReviews {
			if review.ProductID == product.ID.Hex() {
				rating := review.Rating
				seller.Rating = &rating
				break
			}
		}
		sellers = append(sellers, seller)
	}

	c.JSON(http.StatusOK, sellers)
}
