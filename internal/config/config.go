package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	FirebaseKey     string // base64-encoded service account JSON
	StripeSecretKey string
}

func LoadConfig() *Config {
	// .env is only present in local development; deployed environments
	// provide real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "dailyMarketDB"),
		FirebaseKey:     getEnv("FB_SERVICE_KEY", ""),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
