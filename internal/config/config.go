package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"marketplace-client/utils"
)

// Config carries everything the client needs from the environment.
type Config struct {
	BaseURL        string // marketplace API root, e.g. https://api.noroff.dev/api/v1
	SessionBackend string // memory | file | redis
	SessionFile    string // path for the file backend
	RedisAddr      string
	RedisPassword  string
	RedisHash      string
	EmailDomain    string // required suffix for registration emails
}

// Load reads .env (if present) and the process environment, applying
// defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.Debug("no .env file loaded", map[string]any{"error": err.Error()})
	}

	return Config{
		BaseURL:        getEnv("MARKETPLACE_BASE_URL", "https://api.noroff.dev/api/v1"),
		SessionBackend: getEnv("SESSION_BACKEND", "file"),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisHash:      os.Getenv("REDIS_HASH"),
		EmailDomain:    getEnv("REGISTER_EMAIL_DOMAIN", "@stud.noroff.no"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".marketplace-session.json"
	}
	return fmt.Sprintf("%s/.marketplace-session.json", home)
}
