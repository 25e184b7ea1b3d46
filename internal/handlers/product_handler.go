package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"daily-market/internal/cache"
	"daily-market/internal/models"
	"daily-market/internal/repository"
)

const homeProductLimit = 6

type ProductHandler struct {
	products ProductStore
	cache    *cache.Cache
}

func NewProductHandler(products ProductStore, c *cache.Cache) *ProductHandler {
	return &ProductHandler{products: products, cache: c}
}

// POST /products (vendor)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.products.Insert(c.Request.Context(), &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product", "error": err.Error()})
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GET /vendor/products?email= (vendor)
func (h *ProductHandler) VendorProducts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	products, err := h.products.FindByVendor(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /products/home-products
// Latest six approved products for the landing page. Cached.
func (h *ProductHandler) HomeProducts(c *gin.Context) {
	const cacheKey = "products:home"
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.products.FindApproved(c.Request.Context(), homeProductLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products", "error": err.Error()})
		return
	}

	h.cache.Set(cacheKey, products)
	c.JSON(http.StatusOK, products)
}

// GET /products/public?sort=&startDate=&endDate=
// Approved listing with optional date range and numeric price ordering.
func (h *ProductHandler) PublicProducts(c *gin.Context) {
	query := repository.PublicProductQuery{
		Sort:      c.Query("sort"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	products, err := h.products.FindPublic(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, product)
}

// PATCH /products/:id
// Merges scalar fields and appends a price-history entry when the submitted
// date is new. The date check and the append are two steps with no
// transaction between them; concurrent updates for one date can race.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.FindByID(c.Request.Context(), id)
	if err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	newPrice, hasPrice := body["newPrice"]
	delete(body, "newPrice")
	date, _ := body["date"].(string)

	var entry *models.PriceEntry
	if hasPrice {
		priceStr := priceString(newPrice)
		body["pricePerUnit"] = priceStr

		if date != "" && !product.HasPriceFor(date) {
			parsed, _ := strconv.ParseFloat(priceStr, 64)
			entry = &models.PriceEntry{Date: date, Price: parsed}
		}
	}

	if err := h.products.Update(c.Request.Context(), id, body, entry); err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DELETE /products/:id (vendor) and DELETE /admin/products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// GET /admin/products (admin)
func (h *ProductHandler) AdminProducts(c *gin.Context) {
	products, err := h.products.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// PATCH /admin/products/approve/:id (admin)
func (h *ProductHandler) ApproveProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.products.SetStatus(c.Request.Context(), id, models.StatusApproved, ""); err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "Product approved"})
}

// PATCH /admin/products/reject/:id (admin)
func (h *ProductHandler) RejectProduct(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reason is required"})
		return
	}

	if err := h.products.SetStatus(c.Request.Context(), id, models.StatusRejected, body.Reason); err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "Product rejected"})
}

// GET /price-history/:id?compareDate=YYYY-MM-DD
// Chart data comparing the current price against one historical entry.
// Without compareDate only the current value is returned; a date with no
// matching entry compares against 0.
func (h *ProductHandler) PriceHistory(c *gin.Context) {
	product, err := h.products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortRepoError(c, err, "Product not found")
		return
	}

	current, _ := strconv.ParseFloat(product.PricePerUnit, 64)
	name := product.ItemName
	if name == "" {
		name = "Item"
	}

	compareDate := c.Query("compareDate")
	if compareDate == "" {
		c.JSON(http.StatusOK, []gin.H{{"name": name, "current": current}})
		return
	}

	previous := 0.0
	for _, entry := range product.Prices {
		if entry.Date == compareDate {
			previous = entry.Price
			break
		}
	}

	c.JSON(http.StatusOK, []gin.H{{
		"name":       name,
		"current":    current,
		"previous":   previous,
		"difference": round2(current - previous),
	}})
}

// GET /api/price-trends
// Full price histories of approved products, shaped for the trend chart.
// Cached.
func (h *ProductHandler) PriceTrends(c *gin.Context) {
	const cacheKey = "products:trends"
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.products.FindApproved(c.Request.Context(), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch price trends", "error": err.Error()})
		return
	}

	trends := make([]gin.H, 0, len(products))
	for _, product := range products {
		trends = append(trends, gin.H{
			"_id":          product.ID,
			"itemName":     product.ItemName,
			"marketName":   product.MarketName,
			"productImage": product.ProductImage,
			"prices":       product.Prices,
		})
	}

	h.cache.Set(cacheKey, trends)
	c.JSON(http.StatusOK, trends)
}

// priceString normalizes a JSON price value: the frontend sends either a
// decimal string or a bare number.
func priceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
