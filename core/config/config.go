package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminID int64  `yaml:"admin_id" envconfig:"TELEGRAM_ADMIN_ID"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Dir     string `yaml:"dir"`
	BotFile string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// RateLimitConfig holds settings for per-user rate limiting.
type RateLimitConfig struct {
	IntervalMS int `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
}

const (
	// BackendSheets selects the Google Sheets record store.
	BackendSheets = "sheets"
	// BackendPostgres selects the Postgres record store.
	BackendPostgres = "postgres"
)

// SheetsConfig locates the spreadsheet backing the record store.
type SheetsConfig struct {
	CredentialsFile string `yaml:"credentials_file" envconfig:"GOOGLE_SHEET_CREDENTIALS_FILE"`
	SpreadsheetID   string `yaml:"spreadsheet_id" envconfig:"GOOGLE_SHEET_ID"`
	Worksheet       string `yaml:"worksheet" envconfig:"WORKSHEET_NAME"`
}

// PostgresConfig holds connection settings for the Postgres backend.
type PostgresConfig struct {
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	Backend  string         `yaml:"backend" envconfig:"STORE_BACKEND"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// CatalogConfig lists the products and locations offered to users.
type CatalogConfig struct {
	Products  []string `yaml:"products"`
	Locations []string `yaml:"locations"`
}

// Config aggregates the full application configuration.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Store     StoreConfig     `yaml:"store"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

// DefaultProducts is the benchmark product catalog used when the config does not override it.
var DefaultProducts = []string{
	"Red Onion Grade A Restaurant quality", "Red Onion Grade B", "Red Onion Grade C",
	"Red Onion Elfora", "Potatoes", "Potatoes Restaurant Quality",
	"Tomatoes Grade B", "Tomatoes Grade A", "Carrot", "Chilly Green",
	"Chilly Green (Elfora)", "White Cabbage", "White Cabbage (Small)",
	"White Cabbage (Large)", "Avocado", "Strawberry", "Papaya", "Courgette",
	"Cucumber", "Garlic", "Ginger", "Pineapple", "Apple Mango", "Lemon",
	"Apple", "Valencia Orange", "Yerer Orange", "Avocado Shekaraw",
	"Beet root", "Corn", "Orange", "Green Beans", "Salad", "Broccoli",
}

// DefaultLocations is the distribution-center catalog used when the config does not override it.
var DefaultLocations = []string{
	"Distribution Center 1 Gerji",
	"Distribution Center 2 Garment",
	"Distribution Center 3 02",
	"Distribution Center Lemi Kura/Alem Bank",
}

// Load reads configuration from a YAML file, a local .env file, and environment variables.
func Load(path string) (*Config, error) {
	// .env is optional; ignore absence.
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}
	if cfg.Telegram.LongPollTimeoutSeconds < 0 {
		return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if backend == "" {
		backend = BackendSheets
	}
	switch backend {
	case BackendSheets:
		if strings.TrimSpace(cfg.Store.Sheets.SpreadsheetID) == "" {
			return fmt.Errorf("store.sheets.spreadsheet_id is required when store.backend is 'sheets'")
		}
		if strings.TrimSpace(cfg.Store.Sheets.CredentialsFile) == "" {
			cfg.Store.Sheets.CredentialsFile = "credentials.json"
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.Store.Postgres.Host) == "" {
			return fmt.Errorf("store.postgres.host is required when store.backend is 'postgres'")
		}
		if strings.TrimSpace(cfg.Store.Postgres.Name) == "" {
			return fmt.Errorf("store.postgres.name is required when store.backend is 'postgres'")
		}
		if strings.TrimSpace(cfg.Store.Postgres.SSLMode) == "" {
			cfg.Store.Postgres.SSLMode = "disable"
		}
		if cfg.Store.Postgres.MaxConnections <= 0 {
			cfg.Store.Postgres.MaxConnections = 4
		}
	default:
		return fmt.Errorf("invalid store.backend %q; allowed: sheets, postgres", cfg.Store.Backend)
	}
	cfg.Store.Backend = backend

	if len(cfg.Catalog.Products) == 0 {
		cfg.Catalog.Products = append([]string(nil), DefaultProducts...)
	}
	if len(cfg.Catalog.Locations) == 0 {
		cfg.Catalog.Locations = append([]string(nil), DefaultLocations...)
	}

	return nil
}
