package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-market/internal/middleware"
	"daily-market/internal/models"
)

type WatchlistHandler struct {
	watchlist WatchlistStore
}

func NewWatchlistHandler(watchlist WatchlistStore) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// POST /watchlist (authenticated)
// Idempotent against the (userEmail, productId, marketName) triple: a second
// identical add answers 409 and changes nothing.
func (h *WatchlistHandler) AddEntry(c *gin.Context) {
	var entry models.WatchlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if entry.UserEmail == "" || entry.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	exists, err := h.watchlist.Exists(c.Request.Context(), entry.UserEmail, entry.ProductID, entry.MarketName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add to watchlist", "error": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"message": "Already in watchlist"})
		return
	}

	id, err := h.watchlist.Insert(c.Request.Context(), &entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add to watchlist", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// GET /watchlist/:email (authenticated)
// The path parameter alone is not trusted; it must match the verified
// identity.
func (h *WatchlistHandler) ListEntries(c *gin.Context) {
	email := c.Param("email")
	if middleware.VerifiedEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	entries, err := h.watchlist.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch watchlist", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DELETE /watchlist/:id (authenticated)
// The id is the watched product's id. Only the entry owner may remove it.
func (h *WatchlistHandler) RemoveEntry(c *gin.Context) {
	productID := c.Param("id")

	entry, err := h.watchlist.FindByProductID(c.Request.Context(), productID)
	if err != nil {
		abortRepoError(c, err, "Item not found")
		return
	}

	if entry.UserEmail != middleware.VerifiedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	if err := h.watchlist.DeleteByProductID(c.Request.Context(), productID); err != nil {
		abortRepoError(c, err, "Item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
