package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// History backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the configuration for the application.
type Config struct {
	DataDir        string
	HistoryBackend string
	HistoryFile    string
	DatabasePath   string
	CatalogPath    string
	APITokenSecret string
	Port           string

	// Telegram Config
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
	AdminTelegramID        int64
}

// NewFromEnv creates a new Config object from environment variables.
// A .env file in the working directory is loaded first when present.
func NewFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	dataDir := getEnv("MEAL_PLANNER_DATA_DIR", "data")

	backend := getEnv("HISTORY_BACKEND", BackendFile)
	if backend != BackendFile && backend != BackendSQLite {
		return nil, fmt.Errorf("HISTORY_BACKEND must be %q or %q, got %q", BackendFile, BackendSQLite, backend)
	}

	allowed, err := parseIDList(os.Getenv("TELEGRAM_ALLOWED_USER_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_ALLOWED_USER_IDS: %w", err)
	}

	var adminID int64
	if s := os.Getenv("ADMIN_TELEGRAM_ID"); s != "" {
		adminID, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID: %w", err)
		}
	}

	return &Config{
		DataDir:                dataDir,
		HistoryBackend:         backend,
		HistoryFile:            getEnv("HISTORY_FILE", filepath.Join(dataDir, "history.json")),
		DatabasePath:           getEnv("DATABASE_PATH", filepath.Join(dataDir, "meal-planner.db")),
		CatalogPath:            os.Getenv("CATALOG_PATH"),
		APITokenSecret:         os.Getenv("API_TOKEN_SECRET"),
		Port:                   getEnv("PORT", "8080"),
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowed,
		AdminTelegramID:        adminID,
	}, nil
}

// IsAdmin reports whether the Telegram user may run admin commands.
func (c *Config) IsAdmin(userID int64) bool {
	return c.AdminTelegramID != 0 && c.AdminTelegramID == userID
}

// IsAllowed reports whether the Telegram user may use the bot. An empty
// allow-list admits everyone; the admin is always allowed.
func (c *Config) IsAllowed(userID int64) bool {
	if len(c.TelegramAllowedUserIDs) == 0 || c.IsAdmin(userID) {
		return true
	}
	for _, id := range c.TelegramAllowedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIDList(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
