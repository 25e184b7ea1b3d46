package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-market/internal/cache"
	"daily-market/internal/models"
)

type AdvertisementHandler struct {
	ads   AdvertisementStore
	cache *cache.Cache
}

func NewAdvertisementHandler(ads AdvertisementStore, c *cache.Cache) *AdvertisementHandler {
	return &AdvertisementHandler{ads: ads, cache: c}
}

// GET /advertisements?vendorEmails=
func (h *AdvertisementHandler) ListByVendor(c *gin.Context) {
	email := c.Query("vendorEmails")

	ads, err := h.ads.FindByVendor(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisements", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ads)
}

// POST /advertisements (vendor)
func (h *AdvertisementHandler) CreateAdvertisement(c *gin.Context) {
	var ad models.Advertisement
	if err := c.ShouldBindJSON(&ad); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.ads.Insert(c.Request.Context(), &ad)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add advertisement", "error": err.Error()})
		return
	}

	h.cache.DeleteByPrefix("ads:")
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// PATCH /advertisements/:id (vendor)
func (h *AdvertisementHandler) UpdateAdvertisement(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ads.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		abortRepoError(c, err, "Advertisement not found")
		return
	}

	h.cache.DeleteByPrefix("ads:")
	c.JSON(http.StatusOK, gin.H{"message": "Advertisement updated"})
}

// DELETE /advertisements/:id (vendor) and DELETE /admin/advertisements/:id (admin)
func (h *AdvertisementHandler) DeleteAdvertisement(c *gin.Context) {
	if err := h.ads.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortRepoError(c, err, "Advertisement not found")
		return
	}

	h.cache.DeleteByPrefix("ads:")
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// GET /admin/advertisements (admin)
func (h *AdvertisementHandler) AdminAdvertisements(c *gin.Context) {
	ads, err := h.ads.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisements", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ads)
}

// PATCH /admin/advertisements/:id (admin)
func (h *AdvertisementHandler) SetAdvertisementStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := h.ads.SetStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		abortRepoError(c, err, "Advertisement not found")
		return
	}

	h.cache.DeleteByPrefix("ads:")
	c.JSON(http.StatusOK, gin.H{"message": "Advertisement status updated"})
}

// GET /approved/advertisements
func (h *AdvertisementHandler) ApprovedAdvertisements(c *gin.Context) {
	const cacheKey = "ads:approved"
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	ads, err := h.ads.FindApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisements", "error": err.Error()})
		return
	}

	h.cache.Set(cacheKey, ads)
	c.JSON(http.StatusOK, ads)
}
