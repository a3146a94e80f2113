package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally injected setting the server needs.
// Secrets have no baked-in defaults: startup fails without them.
type Config struct {
	MongoURI          string
	MongoDB           string
	Port              string
	JWTSecret         string
	TokenExpiry       time.Duration
	AdminUsername     string
	AdminPasswordHash string
	RedisAddr         string
	RedisPassword     string
	CacheTTL          time.Duration
	ReminderEmail     string
}

// LoadConfig reads .env (if present) and the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:          mustEnv("MONGODB_URI"),
		MongoDB:           getEnv("MONGO_DB", "BucketListDB"),
		Port:              getEnv("PORT", "3000"),
		JWTSecret:         mustEnv("JWT_SECRET"),
		TokenExpiry:       getDuration("TOKEN_EXPIRY", time.Hour),
		AdminUsername:     mustEnv("ADMIN_USERNAME"),
		AdminPasswordHash: mustEnv("ADMIN_PASSWORD_HASH"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          getDuration("EXPERIENCE_CACHE_TTL", 5*time.Minute),
		ReminderEmail:     os.Getenv("REMINDER_EMAIL"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}
