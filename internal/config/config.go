package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
)

type Config struct {
	Port          string
	GinMode       string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	SeedCatalog   bool
	SessionStore  string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	// DemoPassword is the password hashed into every seeded catalog user.
	DemoPassword string

	AuthLatency    time.Duration
	SubmitLatency  time.Duration
	PostJobLatency time.Duration

	StripeSecretKey  string
	PaymentReturnURL string
}

func Load() *Config {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "marketuser"),
		DBPassword:    getEnv("DB_PASSWORD", "marketpassword"),
		DBName:        getEnv("DB_NAME", "freelance_marketplace"),
		SQLitePath:    getEnv("SQLITE_PATH", "file::memory:?cache=shared"),
		SeedCatalog:   getEnvBool("SEED_CATALOG", true),
		SessionStore:  getEnv("SESSION_STORE", "cookie"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		DemoPassword:  getEnv("DEMO_PASSWORD", "demo-password"),

		AuthLatency:    getEnvDuration("AUTH_LATENCY_MS", constants.DefaultAuthLatency),
		SubmitLatency:  getEnvDuration("SUBMIT_LATENCY_MS", constants.DefaultSubmitLatency),
		PostJobLatency: getEnvDuration("POST_JOB_LATENCY_MS", constants.DefaultPostJobLatency),

		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		PaymentReturnURL: getEnv("PAYMENT_RETURN_URL", "http://localhost:5173/payment-success"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a millisecond count
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	ms, err := strconv.Atoi(os.Getenv(key))
	if err != nil || ms < 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
