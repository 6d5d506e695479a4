package config

import (
	"path/filepath"
	"testing"
)

var envKeys = []string{
	"MEAL_PLANNER_DATA_DIR", "HISTORY_BACKEND", "HISTORY_FILE", "DATABASE_PATH",
	"CATALOG_PATH", "API_TOKEN_SECRET", "PORT", "TELEGRAM_BOT_TOKEN",
	"TELEGRAM_WEBHOOK_URL", "TELEGRAM_ALLOWED_USER_IDS", "ADMIN_TELEGRAM_ID",
}

func TestNewFromEnv(t *testing.T) {
	// Helper function to reset environment variables for a test
	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range envKeys {
			t.Setenv(key, "")
		}
	}

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DataDir != "data" {
			t.Errorf("Expected DataDir to be 'data', got '%s'", cfg.DataDir)
		}
		if cfg.HistoryBackend != BackendFile {
			t.Errorf("Expected HistoryBackend to be '%s', got '%s'", BackendFile, cfg.HistoryBackend)
		}
		if cfg.HistoryFile != filepath.Join("data", "history.json") {
			t.Errorf("Unexpected HistoryFile '%s'", cfg.HistoryFile)
		}
		if cfg.DatabasePath != filepath.Join("data", "meal-planner.db") {
			t.Errorf("Unexpected DatabasePath '%s'", cfg.DatabasePath)
		}
		if cfg.Port != "8080" {
			t.Errorf("Expected Port to be '8080', got '%s'", cfg.Port)
		}
		if len(cfg.TelegramAllowedUserIDs) != 0 {
			t.Errorf("Expected no allowed user ids, got %v", cfg.TelegramAllowedUserIDs)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEAL_PLANNER_DATA_DIR", "/var/lib/meals")
		t.Setenv("HISTORY_BACKEND", "sqlite")
		t.Setenv("CATALOG_PATH", "catalog.yaml")
		t.Setenv("API_TOKEN_SECRET", "s3cret")
		t.Setenv("PORT", "9090")
		t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "12, 34,,56")
		t.Setenv("ADMIN_TELEGRAM_ID", "99")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.HistoryBackend != BackendSQLite {
			t.Errorf("Expected HistoryBackend to be 'sqlite', got '%s'", cfg.HistoryBackend)
		}
		if cfg.DatabasePath != filepath.Join("/var/lib/meals", "meal-planner.db") {
			t.Errorf("Unexpected DatabasePath '%s'", cfg.DatabasePath)
		}
		if cfg.CatalogPath != "catalog.yaml" || cfg.APITokenSecret != "s3cret" || cfg.Port != "9090" {
			t.Errorf("Unexpected config %+v", cfg)
		}
		want := []int64{12, 34, 56}
		if len(cfg.TelegramAllowedUserIDs) != len(want) {
			t.Fatalf("Expected %v, got %v", want, cfg.TelegramAllowedUserIDs)
		}
		for i := range want {
			if cfg.TelegramAllowedUserIDs[i] != want[i] {
				t.Errorf("Expected %v, got %v", want, cfg.TelegramAllowedUserIDs)
			}
		}
		if cfg.AdminTelegramID != 99 {
			t.Errorf("Expected AdminTelegramID 99, got %d", cfg.AdminTelegramID)
		}
	})

	t.Run("InvalidBackend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HISTORY_BACKEND", "postgres")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for unknown backend, got nil")
		}
	})

	t.Run("InvalidUserIDs", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "12,abc")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for non-numeric user id, got nil")
		}
	})

	t.Run("InvalidAdminID", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADMIN_TELEGRAM_ID", "admin")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for non-numeric admin id, got nil")
		}
	})
}

func TestConfig_IsAllowed(t *testing.T) {
	open := &Config{}
	if !open.IsAllowed(1) {
		t.Error("Expected empty allow-list to admit everyone")
	}

	restricted := &Config{TelegramAllowedUserIDs: []int64{10}, AdminTelegramID: 20}
	tests := []struct {
		id      int64
		allowed bool
		admin   bool
	}{
		{10, true, false},
		{20, true, true},
		{30, false, false},
	}
	for _, tt := range tests {
		if got := restricted.IsAllowed(tt.id); got != tt.allowed {
			t.Errorf("IsAllowed(%d) = %v, want %v", tt.id, got, tt.allowed)
		}
		if got := restricted.IsAdmin(tt.id); got != tt.admin {
			t.Errorf("IsAdmin(%d) = %v, want %v", tt.id, got, tt.admin)
		}
	}
	if open.IsAdmin(0) {
		t.Error("Expected zero id never to be admin")
	}
}
