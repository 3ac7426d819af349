package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultMongoDatabase         = "blog_api"
	DefaultAccessTokenExpiryMin  = 60
	DefaultRefreshTokenExpiryMin = 10080
)

type Config struct {
	Env                string
	Port               string
	MongoURI           string
	MongoDatabase      string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
}

func Load() *Config {
	// Optional .env for local development; deployments set the environment
	// directly, and real variables take precedence over the file.
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", DefaultPort),
		MongoURI:           mustGetEnv("MONGO_URI"),
		MongoDatabase:      getEnv("MONGO_DB", DefaultMongoDatabase),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
	}

	// A leaked access token must never be usable to mint refresh tokens,
	// so the two signing keys have to be independent key material.
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		log.Fatal("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be distinct")
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
