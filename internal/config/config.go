package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	ListenAddr  string
}

// Load reads configuration from the environment, with .env as a
// development convenience. DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      24 * time.Hour,
		ListenAddr:  ":8080",
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}

	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("JWT_TTL is not a valid duration")
		}
		cfg.JWTTTL = ttl
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}

	return cfg, nil
}
