package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the catalog API.
type Config struct {
	Port         string // HTTP listen port (default: 8000)
	DatabaseURL  string // MongoDB connection string; empty means no store
	DatabaseName string // MongoDB database name
	RedisURL     string // Optional; empty disables the product-list cache
}

// LoadConfig loads environment variables into a Config struct and validates
// them. A missing DATABASE_URL is not an error: the service boots without a
// store and read endpoints degrade to empty results.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		RedisURL:     os.Getenv("REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	if cfg.DatabaseURL != "" && cfg.DatabaseName == "" {
		return nil, fmt.Errorf("DATABASE_NAME is required when DATABASE_URL is set")
	}

	return cfg, nil
}
