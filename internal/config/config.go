package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Narrative providers understood by NARRATIVE_PROVIDER.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config represents the full application configuration surface.
type Config struct {
	Server      ServerConfig
	Auth        AuthConfig
	Store       StoreConfig
	MongoDB     MongoDBConfig
	Narrative   NarrativeConfig
	Cache       CacheConfig
	Sheets      SheetsConfig
	WhatsApp    WhatsAppConfig
	Reporting   ReportingConfig
	LogLevel    string
	DefaultLang string
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// AuthConfig holds the single static farm owner credential.
type AuthConfig struct {
	Username string
	Password string
}

// StoreConfig selects a remote record store. When URL is empty records are
// kept in MongoDB.
type StoreConfig struct {
	URL string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// NarrativeConfig holds settings for the text generation backends.
type NarrativeConfig struct {
	Provider       string
	GeminiKey      string
	GeminiBaseURL  string
	DailyModel     string
	AnomalyModel   string
	MarketModel    string
	AnthropicKey   string
	AnthropicURL   string
	AnthropicModel string
}

// CacheConfig holds the optional Redis cache for market insights.
type CacheConfig struct {
	RedisURL  string
	MarketTTL time.Duration
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// WhatsAppConfig contains credentials for the Meta WhatsApp Cloud API used
// to notify the farm owner.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
	OwnerID       string
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// NarrativeEnabled reports whether the selected provider has a key.
func (c *Config) NarrativeEnabled() bool {
	switch c.Narrative.Provider {
	case ProviderAnthropic:
		return c.Narrative.AnthropicKey != ""
	default:
		return c.Narrative.GeminiKey != ""
	}
}

// SheetsEnabled reports whether summaries are exported to Google Sheets.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

// WhatsAppEnabled reports whether owner notifications are sent.
func (c *Config) WhatsAppEnabled() bool {
	return c.WhatsApp.AccessToken != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("MARKET_CACHE_TTL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("MARKET_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Auth: AuthConfig{
			Username: getenvWithDefault("AUTH_USERNAME", "farmowner"),
			Password: os.Getenv("AUTH_PASSWORD"),
		},
		Store: StoreConfig{
			URL: os.Getenv("RECORD_STORE_URL"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "khamar"),
		},
		Narrative: NarrativeConfig{
			Provider:       getenvWithDefault("NARRATIVE_PROVIDER", ProviderGemini),
			GeminiKey:      os.Getenv("GEMINI_API_KEY"),
			GeminiBaseURL:  os.Getenv("GEMINI_BASE_URL"),
			DailyModel:     getenvWithDefault("GEMINI_DAILY_MODEL", "gemini-flash-lite-latest"),
			AnomalyModel:   getenvWithDefault("GEMINI_ANOMALY_MODEL", "gemini-3-pro-preview"),
			MarketModel:    getenvWithDefault("GEMINI_MARKET_MODEL", "gemini-3-flash-preview"),
			AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicURL:   os.Getenv("ANTHROPIC_BASE_URL"),
			AnthropicModel: os.Getenv("ANTHROPIC_MODEL"),
		},
		Cache: CacheConfig{
			RedisURL:  os.Getenv("REDIS_URL"),
			MarketTTL: ttl,
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			OwnerID:       os.Getenv("WHATSAPP_OWNER_ID"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 7 1 * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Dhaka"),
		},
		LogLevel:    getenvWithDefault("LOG_LEVEL", "info"),
		DefaultLang: getenvWithDefault("DEFAULT_LANGUAGE", "en"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.Auth.Username == "":
		return errors.New("AUTH_USERNAME must not be empty")
	case c.Auth.Password == "":
		return errors.New("AUTH_PASSWORD must be provided")
	}

	if c.Store.URL == "" && c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI or RECORD_STORE_URL must be provided")
	}
	if c.Store.URL == "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	switch c.Narrative.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("NARRATIVE_PROVIDER %q is not supported", c.Narrative.Provider)
	}

	switch c.DefaultLang {
	case "en", "bn":
	default:
		return fmt.Errorf("DEFAULT_LANGUAGE %q is not supported", c.DefaultLang)
	}

	if c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided with GOOGLE_SHEETS_CREDENTIALS_PATH")
	}

	if c.WhatsAppEnabled() {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
		case c.WhatsApp.OwnerID == "":
			return errors.New("WHATSAPP_OWNER_ID must be provided")
		case c.WhatsApp.BaseURL == "":
			return errors.New("WHATSAPP_BASE_URL must not be empty")
		case c.WhatsApp.APIVersion == "":
			return errors.New("WHATSAPP_API_VERSION must not be empty")
		}
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}
	if _, err := time.LoadLocation(c.Reporting.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Reporting.Timezone, err)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
