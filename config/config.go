package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds everything the server needs from the environment. It is built
// once in main and passed into constructors; nothing reads env vars at
// request time.
type Config struct {
	Port           string
	MongoURL       string
	MongoDatabase  string
	JWTSecret      string
	SessionExpiry  time.Duration
	CookieName     string
	SecureCookies  bool
	FrontendOrigin string
	UploadsDir     string
	RedisAddr      string
	RedisPassword  string
}

// Load reads the configuration from environment variables with defaults.
func Load() *Config {
	expiryHours := 24
	if hours, err := strconv.Atoi(getEnv("SESSION_EXPIRY_HOURS", "24")); err == nil && hours > 0 {
		expiryHours = hours
	}

	return &Config{
		Port:           getEnv("PORT", "4000"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "airbnb"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SessionExpiry:  time.Duration(expiryHours) * time.Hour,
		CookieName:     getEnv("COOKIE_NAME", "token"),
		SecureCookies:  getEnv("SECURE_COOKIES", "false") == "true",
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		UploadsDir:     getEnv("UPLOADS_DIR", "uploads"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConnectDB opens the MongoDB connection and verifies it with a ping.
func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client.Database(cfg.MongoDatabase), nil
}
