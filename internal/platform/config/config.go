package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultRatesAPIURL      = "https://api.exchangerate-api.com/v4/latest"
	defaultRatesHTTPTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	LocalCurrency    string
	RatesAPIURL      string
	RatesHTTPTimeout time.Duration
	LogLevel         string
	LogFormat        string
	IsProduction     bool

	// Lead notifications
	SendGridAPIKey     string `mapstructure:"SENDGRID_API_KEY"`
	LeadNotifyTo       string `mapstructure:"LEAD_NOTIFY_TO"`
	LeadNotifyFrom     string `mapstructure:"LEAD_NOTIFY_FROM"`
	LeadNotifyFromName string `mapstructure:"LEAD_NOTIFY_FROM_NAME"`
}

// LeadEmailEnabled reports whether lead notifications should go out by email.
func (c *Config) LeadEmailEnabled() bool {
	return c.SendGridAPIKey != "" && c.LeadNotifyTo != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("LOCAL_CURRENCY", "RUB")
	v.SetDefault("RATES_API_URL", defaultRatesAPIURL)
	v.SetDefault("RATES_HTTP_TIMEOUT", defaultRatesHTTPTimeout.String())
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("LEAD_NOTIFY_TO", "")
	v.SetDefault("LEAD_NOTIFY_FROM", "noreply@fxdesk.local")
	v.SetDefault("LEAD_NOTIFY_FROM_NAME", "FX Desk")

	// Environment variables override defaults (and values loaded from .env).
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.LocalCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("LOCAL_CURRENCY")))
	if len(cfg.LocalCurrency) != 3 {
		log.Printf("Warning: Invalid value for LOCAL_CURRENCY ('%s'). Defaulting to RUB.\n", cfg.LocalCurrency)
		cfg.LocalCurrency = "RUB"
	}

	cfg.RatesAPIURL = strings.TrimRight(v.GetString("RATES_API_URL"), "/")
	if cfg.RatesAPIURL == "" {
		cfg.RatesAPIURL = defaultRatesAPIURL
		log.Printf("Warning: RATES_API_URL is empty. Defaulting to %s\n", cfg.RatesAPIURL)
	}

	// Load HTTP timeout (e.g., "5s", "1m")
	timeoutStr := v.GetString("RATES_HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultRatesHTTPTimeout
		log.Printf("Warning: Invalid value for RATES_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.RatesHTTPTimeout = timeout

	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.LogFormat = v.GetString("LOG_FORMAT")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.SendGridAPIKey = v.GetString("SENDGRID_API_KEY")
	cfg.LeadNotifyTo = v.GetString("LEAD_NOTIFY_TO")
	cfg.LeadNotifyFrom = v.GetString("LEAD_NOTIFY_FROM")
	cfg.LeadNotifyFromName = v.GetString("LEAD_NOTIFY_FROM_NAME")

	if cfg.SendGridAPIKey != "" && cfg.LeadNotifyTo == "" {
		log.Println("Warning: SENDGRID_API_KEY is set but LEAD_NOTIFY_TO is not. Leads will only be logged.")
	}

	return cfg, nil
}
