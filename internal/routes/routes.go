package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"daily-market/internal/cache"
	"daily-market/internal/handlers"
	"daily-market/internal/middleware"
	"daily-market/internal/models"
	"daily-market/internal/repository"
)

// RegisterRoutes wires every collection repository, handler and gate onto the
// engine. Paths mirror the frontend contract, so they stay at the root rather
// than under a version group.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, verifier middleware.TokenVerifier, payments handlers.PaymentProvider, c *cache.Cache) {
	users := repository.NewUserRepository(db.Collection("users"))
	products := repository.NewProductRepository(db.Collection("products"))
	ads := repository.NewAdvertisementRepository(db.Collection("advertisements"))
	reviews := repository.NewReviewRepository(db.Collection("reviews"))
	watchlist := repository.NewWatchlistRepository(db.Collection("watchlist"))
	purchases := repository.NewPurchaseRepository(db.Collection("buyProducts"))

	userHandler := handlers.NewUserHandler(users)
	productHandler := handlers.NewProductHandler(products, c)
	adHandler := handlers.NewAdvertisementHandler(ads, c)
	reviewHandler := handlers.NewReviewHandler(reviews, products)
	watchlistHandler := handlers.NewWatchlistHandler(watchlist)
	orderHandler := handlers.NewOrderHandler(purchases, payments)
	dashboardHandler := handlers.NewDashboardHandler(users, products, ads, watchlist, purchases)

	authed := middleware.RequireAuth(verifier)
	vendorOnly := middleware.RequireRole(users, models.RoleVendor)
	adminOnly := middleware.RequireRole(users, models.RoleAdmin)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "this is daily market bd server")
	})

	// users
	router.GET("/users/:email", userHandler.GetUserRole)
	router.GET("/users", authed, adminOnly, userHandler.ListUsers)
	router.POST("/users", userHandler.CreateUser)
	router.PATCH("/users/role/:id", authed, adminOnly, userHandler.UpdateUserRole)

	// products
	router.POST("/products", authed, vendorOnly, productHandler.CreateProduct)
	router.GET("/vendor/products", authed, vendorOnly, productHandler.VendorProducts)
	router.GET("/products/home-products", productHandler.HomeProducts)
	router.GET("/products/public", productHandler.PublicProducts)
	router.GET("/products/:id", productHandler.GetProduct)
	router.PATCH("/products/:id", productHandler.UpdateProduct)
	router.DELETE("/products/:id", authed, vendorOnly, productHandler.DeleteProduct)

	router.GET("/admin/products", authed, adminOnly, productHandler.AdminProducts)
	router.PATCH("/admin/products/approve/:id", authed, adminOnly, productHandler.ApproveProduct)
	router.PATCH("/admin/products/reject/:id", authed, adminOnly, productHandler.RejectProduct)
	router.DELETE("/admin/products/:id", authed, adminOnly, productHandler.DeleteProduct)

	// advertisements
	router.GET("/advertisements", adHandler.ListByVendor)
	router.POST("/advertisements", authed, vendorOnly, adHandler.CreateAdvertisement)
	router.PATCH("/advertisements/:id", authed, vendorOnly, adHandler.UpdateAdvertisement)
	router.DELETE("/advertisements/:id", authed, vendorOnly, adHandler.DeleteAdvertisement)

	router.GET("/admin/advertisements", authed, adminOnly, adHandler.AdminAdvertisements)
	router.PATCH("/admin/advertisements/:id", authed, adminOnly, adHandler.SetAdvertisementStatus)
	router.DELETE("/admin/advertisements/:id", authed, adminOnly, adHandler.DeleteAdvertisement)
	router.GET("/approved/advertisements", adHandler.ApprovedAdvertisements)

	// reviews
	router.GET("/reviews/:productId", reviewHandler.ListByProduct)
	router.POST("/reviews", authed, reviewHandler.CreateReview)

	// watchlist
	router.POST("/watchlist", authed, watchlistHandler.AddEntry)
	router.GET("/watchlist/:email", authed, watchlistHandler.ListEntries)
	router.DELETE("/watchlist/:id", authed, watchlistHandler.RemoveEntry)

	// payments and orders
	router.POST("/create-payment-intent", orderHandler.CreatePaymentIntent)
	router.POST("/buy-product", orderHandler.BuyProduct)
	router.GET("/orders/:email", authed, orderHandler.UserOrders)
	router.GET("/orders", authed, adminOnly, orderHandler.AllOrders)

	// derived views
	router.GET("/price-history/:id", productHandler.PriceHistory)
	router.GET("/api/price-trends", productHandler.PriceTrends)
	router.GET("/api/products/best-sellers", reviewHandler.BestSellers)
	router.GET("/dashboard-stats", dashboardHandler.Stats)
}
