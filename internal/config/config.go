package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	IsProduction bool
	Port         string
	// ProdOrigins are the allowed CORS origins in production.
	ProdOrigins []string

	DatabaseDSN string

	// RedisAddr is optional; without it, slot holds degrade to a no-op
	// and the database exclusion constraint alone guards inserts.
	RedisAddr     string
	RedisPassword string
	HoldTTL       time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	// PaymentGatewayURL is optional; without it, charges are approved by
	// a local fake. That suits development, never production.
	PaymentGatewayURL string
	PaymentAPIKey     string

	UploadDir string
}

// Load reads configuration from the environment, consulting .env first.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		IsProduction:      os.Getenv("APP_ENV") == "production",
		Port:              getEnv("PORT", "8080"),
		DatabaseDSN:       os.Getenv("DB_DSN"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		PaymentGatewayURL: os.Getenv("PAYMENT_GATEWAY_URL"),
		PaymentAPIKey:     os.Getenv("PAYMENT_API_KEY"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.ProdOrigins = append(cfg.ProdOrigins, o)
			}
		}
	}

	var err error
	if cfg.HoldTTL, err = getDuration("HOLD_TTL_SECONDS", 30); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL_SECONDS", 24*3600); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallbackSeconds int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallbackSeconds) * time.Second, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds", key)
	}
	return time.Duration(n) * time.Second, nil
}
