package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"daily-market/internal/auth"
	"daily-market/internal/cache"
	"daily-market/internal/config"
	"daily-market/internal/database"
	"daily-market/internal/payments"
	"daily-market/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	verifier, err := auth.NewVerifier(context.Background(), cfg.FirebaseKey)
	if err != nil {
		log.Fatal("❌ Failed to initialize Firebase:", err)
	}

	provider := payments.NewStripeProvider(cfg.StripeSecretKey)
	listingCache := cache.New(2 * time.Minute)

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, db, verifier, provider, listingCache)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
