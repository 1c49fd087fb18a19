package main

import (
	"context"
	"log"
	"os"

	"github.com/Crish19/airbnb-clone-backend/config"
	"github.com/Crish19/airbnb-clone-backend/handlers"
	"github.com/Crish19/airbnb-clone-backend/repositories"
	"github.com/Crish19/airbnb-clone-backend/routes"
	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := config.ConnectDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	var cache *utils.Cache
	if cfg.RedisAddr != "" {
		cache = utils.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	sessions := utils.NewSessionManager(cfg.JWTSecret, cfg.CookieName, cfg.SessionExpiry, cfg.SecureCookies)

	ctrl := routes.Controllers{
		Users:    handlers.NewUserController(repositories.NewUserRepository(db), sessions),
		Places:   handlers.NewPlaceController(repositories.NewPlaceRepository(db), cache),
		Bookings: handlers.NewBookingController(repositories.NewBookingRepository(db)),
		Uploads:  handlers.NewUploadController(cfg.UploadsDir),
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(e, ctrl, sessions, cfg.UploadsDir)

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
