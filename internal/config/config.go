package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	TokenFile    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env file is optional, so we just log a warning
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return &Config{
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8000/api"),
		TokenFile:    getEnv("TOKEN_FILE", defaultTokenFile()),
		ReadTimeout:  getDuration("READ_TIMEOUT_SECONDS", 10*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT_SECONDS", 15*time.Second),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zeal-token"
	}
	return filepath.Join(home, ".zeal-token")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
