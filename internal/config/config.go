package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DataDir    string
	DBPath     string
	JWTSecret  string
	LogLevel   string
	SessionTTL string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		Port:       os.Getenv("PORT"),
		DataDir:    os.Getenv("DATA_DIR"),
		DBPath:     os.Getenv("DB_PATH"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		SessionTTL: os.Getenv("SESSION_TTL"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.DataDir == "" {
		config.DataDir = "data"
	}
	if config.DBPath == "" {
		config.DBPath = filepath.Join(config.DataDir, "shopease.db")
	}
	if config.JWTSecret == "" {
		config.JWTSecret = "dev_secret_change_me"
	}

	return config, nil
}
