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
	APIBaseURL  string
	HTTPTimeout time.Duration

	SessionFile string

	CountdownTicks int
	TickInterval   time.Duration
}

// Load reads .env (if present) and the environment and returns the client
// configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5001"),
		HTTPTimeout:    time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		CountdownTicks: getEnvAsInt("COUNTDOWN_TICKS", 3),
		TickInterval:   time.Second,
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".codecontest_session.json"
	}
	return filepath.Join(dir, "codecontest", "session.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
