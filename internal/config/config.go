package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultFeedURL     = "https://earthquake.usgs.gov/fdsnws/event/1/query"
	DefaultDatabaseURL = "file:data/earthquakes.db"
)

type Config struct {
	Port        string
	DatabaseURL string
	Environment string
	LogLevel    string // debug, info, warn, error; empty keeps the environment default
	BunDebug    bool

	// USGS feed window
	FeedURL          string
	FeedMinMagnitude float64
	FeedStartTime    string // YYYY-MM-DD
	FeedEndTime      string // YYYY-MM-DD, empty means "today" at load time
	FeedLimit        int
	FeedTimeout      time.Duration

	LookupCacheTTL time.Duration

	AllowedOrigins []string
}

// Load loads environment variables and returns a Config struct
func Load() *Config {
	_ = godotenv.Load()

	allowedOrigins := strings.Split(
		getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501"),
		",",
	)
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	return &Config{
		Port:             getEnv("APP_PORT", "8780"),
		DatabaseURL:      getEnv("DATABASE_URL", DefaultDatabaseURL),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         getEnv("LOG_LEVEL", ""),
		BunDebug:         getEnvAsBool("BUNDEBUG", false),
		FeedURL:          getEnv("USGS_FEED_URL", DefaultFeedURL),
		FeedMinMagnitude: getEnvAsFloat("USGS_MIN_MAGNITUDE", 4.5),
		FeedStartTime:    getEnv("USGS_START_TIME", "2025-01-01"),
		FeedEndTime:      getEnv("USGS_END_TIME", ""),
		FeedLimit:        getEnvAsInt("USGS_LIMIT", 50),
		FeedTimeout:      getEnvAsDuration("USGS_TIMEOUT", 30*time.Second),
		LookupCacheTTL:   getEnvAsDuration("LOOKUP_CACHE_TTL", 10*time.Minute),
		AllowedOrigins:   allowedOrigins,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("invalid bool for %s, defaulting to %v\n", key, fallback)
		return fallback
	}
	return val
}

func getEnvAsInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("invalid int for %s, defaulting to %d\n", key, fallback)
		return fallback
	}
	return val
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		log.Printf("invalid float for %s, defaulting to %v\n", key, fallback)
		return fallback
	}
	return val
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := time.ParseDuration(valStr)
	if err != nil || val < 0 {
		log.Printf("invalid duration for %s, defaulting to %s\n", key, fallback)
		return fallback
	}
	return val
}
