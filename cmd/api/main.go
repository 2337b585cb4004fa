package main

import (
	"context"
	"log"

	"github.com/hirehub/backend/internal/config"
	"github.com/hirehub/backend/internal/database"
	"github.com/hirehub/backend/internal/handlers"
	"github.com/hirehub/backend/internal/middleware"
	"github.com/hirehub/backend/internal/routes"
	"github.com/hirehub/backend/internal/services"
	"github.com/hirehub/backend/internal/storage"
	"github.com/hirehub/backend/internal/webhook"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Environment & config
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 2. Database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	// 3. Media host; falls back to local disk when Cloudinary is unset.
	var uploader storage.Uploader
	staticDir := ""
	if cfg.CloudinaryURL != "" {
		uploader, err = storage.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("cloudinary uploader configured")
	} else {
		uploader, err = storage.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			log.Fatal(err)
		}
		staticDir = cfg.UploadDir
		log.Printf("local uploader configured at %s", cfg.UploadDir)
	}

	// 4. Optional Redis for auth rate limiting
	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to redis: ", err)
		}
		limiter = middleware.NewRateLimiter(client)
		log.Println("redis rate limiting enabled")
	}

	// 5. Webhook verification
	verifier, err := webhook.NewSvixVerifier(cfg.WebhookSecret)
	if err != nil {
		log.Fatal("invalid webhook secret: ", err)
	}

	// 6. Services
	companyService := services.NewCompanyService(db, uploader)
	jobService := services.NewJobService(db)
	userService := services.NewUserService(db, uploader)

	// 7. Handlers
	companyHandler := handlers.NewCompanyHandler(companyService, jobService, cfg.JWTSecret)
	jobHandler := handlers.NewJobHandler(jobService)
	userHandler := handlers.NewUserHandler(userService)
	webhookHandler := handlers.NewWebhookHandler(verifier, webhook.NewSyncer(db))

	// 8. Router
	router := routes.SetupRoutes(routes.Options{
		DB:                db,
		CompanyHandler:    companyHandler,
		JobHandler:        jobHandler,
		UserHandler:       userHandler,
		WebhookHandler:    webhookHandler,
		RateLimiter:       limiter,
		JWTSecret:         cfg.JWTSecret,
		IdentityJWTSecret: cfg.IdentityJWTSecret,
		StaticUploadDir:   staticDir,
	})

	log.Printf("server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed to start: ", err)
	}
}
