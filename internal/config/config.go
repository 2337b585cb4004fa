package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment. Secrets have
// no defaults and are checked by Validate before the server starts.
type Config struct {
	Port string

	DatabaseHost     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabasePort     string
	DatabaseSSLMode  string

	// Signs company session tokens.
	JWTSecret string
	// Shared secret the identity provider signs bearer tokens with.
	IdentityJWTSecret string
	// Shared secret for webhook delivery signatures.
	WebhookSecret string

	// Media host connection string; when empty, uploads go to UploadDir.
	CloudinaryURL string
	UploadDir     string

	// Optional; rate limiting is skipped when unset.
	RedisAddr     string
	RedisPassword string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "5000"),
		DatabaseHost:     getEnv("DATABASE_HOST", "localhost"),
		DatabaseUser:     getEnv("DATABASE_USER", "postgres"),
		DatabasePassword: getEnv("DATABASE_PASSWORD", "password"),
		DatabaseName:     getEnv("DATABASE_NAME", "jobboard"),
		DatabasePort:     getEnv("DATABASE_PORT", "5432"),
		DatabaseSSLMode:  getEnv("DATABASE_SSLMODE", "disable"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		IdentityJWTSecret: os.Getenv("IDENTITY_JWT_SECRET"),
		WebhookSecret:     os.Getenv("IDENTITY_WEBHOOK_SECRET"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IdentityJWTSecret == "" {
		return fmt.Errorf("IDENTITY_JWT_SECRET is required")
	}
	if c.WebhookSecret == "" {
		return fmt.Errorf("IDENTITY_WEBHOOK_SECRET is required")
	}
	return nil
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabasePort,
		c.DatabaseSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
