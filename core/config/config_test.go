package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Store: StoreConfig{
			Backend: "sheets",
			Sheets:  SheetsConfig{SpreadsheetID: "sheet-id"},
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Store.Sheets.CredentialsFile != "credentials.json" {
		t.Fatalf("credentials default = %q", cfg.Store.Sheets.CredentialsFile)
	}
	if len(cfg.Catalog.Products) == 0 || len(cfg.Catalog.Locations) == 0 {
		t.Fatal("expected catalog defaults")
	}
}

func TestNormalizeMissingToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	if err := Normalize(cfg); err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestNormalizeBadBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Backend = "redis"
	if err := Normalize(cfg); err == nil || !strings.Contains(err.Error(), "store.backend") {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestNormalizePostgresValidation(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Backend = "postgres"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing postgres host")
	}
	cfg.Store.Postgres.Host = "localhost"
	cfg.Store.Postgres.Name = "pricebench"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Store.Postgres.MaxConnections != 4 {
		t.Fatalf("expected pool default, got %d", cfg.Store.Postgres.MaxConnections)
	}
}

func TestNormalizeEmptyBackendDefaultsToSheets(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Backend = ""
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Store.Backend != BackendSheets {
		t.Fatalf("backend = %q", cfg.Store.Backend)
	}
}
