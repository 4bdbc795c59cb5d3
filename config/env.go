package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	StoreURL     string
	StoreTimeout time.Duration
	PollInterval time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	storeTimeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "10s"))
	if err != nil {
		storeTimeout = 10 * time.Second
	}

	pollInterval, err := time.ParseDuration(getEnv("POLL_INTERVAL", "3s"))
	if err != nil {
		pollInterval = 3 * time.Second
	}

	AppConfig = &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("APP_PORT", getEnv("PORT", "8082")),
		StoreURL:     getEnv("STORE_URL", "http://localhost:3001"),
		StoreTimeout: storeTimeout,
		PollInterval: pollInterval,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Remote store: %s", AppConfig.StoreURL)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
