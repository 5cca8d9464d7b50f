// Package config provides centralized default values for the listings platform.
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			return
		}
		log.Println("Loading configuration overrides from .env file...")
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database
	DBDriver           string
	DBDataSource       string
	DBMaxOpenConns     int
	DBMaxIdleConns     int
	DBConnMaxLifetime  time.Duration
	SlowQueryThreshold time.Duration

	// Cache
	ListingCacheTTL time.Duration

	// Auth
	JWTSecret          string
	AdminPasswordHash  string
	SessionTokenExpiry time.Duration

	// Media
	MediaBasePath      string
	MaxUploadBytes     int64
	MaxListingPhotos   int
	MediaFetchRetries  int
	MediaVariantWidths []int

	// Payments
	CheckoutBaseURL string

	// Email
	ProposalEmailEnabled bool

	// Logging
	LogDirectory    string
	LogToFile       bool
	VerboseDatabase bool
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBDataSource = getEnvString("DB_DATA_SOURCE", "listings.db")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetime = time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 250*time.Millisecond)

	// Cache
	ListingCacheTTL = time.Duration(getEnvInt("LISTING_CACHE_TTL_HOURS", 24)) * time.Hour

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
	SessionTokenExpiry = time.Duration(getEnvInt("SESSION_TOKEN_EXPIRY_HOURS", 24)) * time.Hour

	// Media
	MediaBasePath = getEnvString("MEDIA_BASE_PATH", "media")
	MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20
	MaxListingPhotos = getEnvInt("MAX_LISTING_PHOTOS", 10)
	MediaFetchRetries = getEnvInt("MEDIA_FETCH_RETRIES", 1)
	MediaVariantWidths = []int{1200, 600, 300}

	// Payments
	CheckoutBaseURL = getEnvString("CHECKOUT_BASE_URL", "https://pay.example.com/session")

	// Email
	ProposalEmailEnabled = getEnvBool("PROPOSAL_EMAIL_ENABLED", true)

	// Logging
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	LogToFile = getEnvBool("LOG_TO_FILE", true)
	VerboseDatabase = getEnvBool("VERBOSE_DATABASE", false)
}
