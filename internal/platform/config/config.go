package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	JWTSecret string
	JWTIssuer string

	// DocumentLocation decides which calendar day a document number belongs to.
	DocumentLocation *time.Location
	// DocumentLockTimeout bounds how long a document creation waits on the sequence row.
	DocumentLockTimeout time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "crm-pos-app")
	v.SetDefault("DOCUMENT_TIMEZONE", "UTC")
	v.SetDefault("DOCUMENT_LOCK_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	tz := v.GetString("DOCUMENT_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_TIMEZONE %q: %w", tz, err)
	}
	cfg.DocumentLocation = loc

	lockTimeoutStr := v.GetString("DOCUMENT_LOCK_TIMEOUT")
	lockTimeout, err := time.ParseDuration(lockTimeoutStr)
	if err != nil || lockTimeout <= 0 {
		lockTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for DOCUMENT_LOCK_TIMEOUT ('%s'). Defaulting to %s.\n", lockTimeoutStr, lockTimeout)
	}
	cfg.DocumentLockTimeout = lockTimeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
