package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"3001"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS Configuration
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	ClientURL      string   `env:"CLIENT_URL"`

	// Mail Configuration
	SMTPHost          string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort          int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser         string `env:"EMAIL_USER"`
	EmailPass         string `env:"EMAIL_PASS"`
	OAuthClientID     string `env:"OAUTH_CLIENT_ID"`
	OAuthClientSecret string `env:"OAUTH_CLIENT_SECRET"`
	OAuthRefreshToken string `env:"OAUTH_REFRESH_TOKEN"`
	OAuthAccessToken  string `env:"OAUTH_ACCESS_TOKEN"`
	ClinicEmail       string `env:"CLINIC_EMAIL" envDefault:"care@luminadental.com"`

	// Rate Limiting
	RateLimitWindowMinutes int `env:"RATE_LIMIT_WINDOW_MINUTES" envDefault:"15"`
	RateLimitMax           int `env:"RATE_LIMIT_MAX" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for a .env file; godotenv never overwrites
	// variables already present in the environment.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Production defaults to the clinic's public origins unless overridden
	if len(cfg.AllowedOrigins) == 0 && cfg.Environment == "production" {
		cfg.AllowedOrigins = []string{
			"https://lumina-dental.com",
			"https://www.lumina-dental.com",
		}
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// MailConfigured reports whether any mail credentials are present.
func (c *Config) MailConfigured() bool {
	return c.EmailUser != "" && (c.EmailPass != "" || c.OAuthClientID != "")
}
