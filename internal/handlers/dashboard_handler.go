package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-market/internal/models"
)

type DashboardHandler struct {
	users     UserStore
	products  ProductStore
	ads       AdvertisementStore
	watchlist WatchlistStore
	purchases PurchaseStore
}

func NewDashboardHandler(users UserStore, products ProductStore, ads AdvertisementStore, watchlist WatchlistStore, purchases PurchaseStore) *DashboardHandler {
	return &DashboardHandler{
		users:     users,
		products:  products,
		ads:       ads,
		watchlist: watchlist,
		purchases: purchases,
	}
}

// GET /dashboard-stats?role=&email=
// Summary counts per role. The admin shape is a one-element array, matching
// what the dashboard frontend consumes.
func (h *DashboardHandler) Stats(c *gin.Context) {
	role := c.Query("role")
	email := c.Query("email")
	ctx := c.Request.Context()

	switch role {
	case models.RoleUser:
		orders, err := h.purchases.CountByEmail(ctx, email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		watchlist, err := h.watchlist.CountByEmail(ctx, email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "watchlist": watchlist})

	case models.RoleVendor:
		products, err := h.products.FindByVendor(ctx, email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		totalRevenue := 0.0
		for i := range products {
			totalRevenue += products[i].LatestPrice()
		}
		c.JSON(http.StatusOK, gin.H{"totalProducts": len(products), "totalRevenue": totalRevenue})

	case models.RoleAdmin:
		users, err := h.users.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		products, err := h.products.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		ads, err := h.ads.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		orders, err := h.purchases.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, []gin.H{{
			"users":         users,
			"products":      products,
			"advertisement": ads,
			"orders":        orders,
		}})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
	}
}
