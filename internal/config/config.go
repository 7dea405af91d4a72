// Package config loads the site's runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server configuration.
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	SiteURL string `env:"SITE_URL" envDefault:"https://nexoradevlabs.com"`

	// FrontendOrigins are the origins allowed to call /api/* cross-origin.
	FrontendOrigins []string `env:"FRONTEND_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Mail   MailConfig
	GitHub GitHubConfig

	// ContactRatePerMinute limits POST /api/contact per client IP. 0 disables it.
	ContactRatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"0"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"40s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// MailConfig configures the transactional email provider used by the contact relay.
type MailConfig struct {
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	// MailgunAPIBase overrides the API endpoint (EU region, tests).
	MailgunAPIBase string `env:"MAILGUN_API_BASE"`
	From           string `env:"CONTACT_FROM" envDefault:"notifications@nexoradevlabs.com"`
	To             string `env:"CONTACT_TO" envDefault:"info@nexoradevlabs.com"`
}

// IsConfigured reports whether the provider credentials are present.
func (c MailConfig) IsConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

// GitHubConfig configures the repository statistics fetcher.
type GitHubConfig struct {
	// Token is optional; it only raises the API rate limit.
	Token  string `env:"GITHUB_TOKEN"`
	Org    string `env:"GITHUB_ORG" envDefault:"NexoraDevLabs"`
	APIURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	// CacheTTL bounds how long the server keeps fetched statistics. 0 keeps
	// them until an explicit retry.
	CacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"15m"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that the env tags cannot express.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.ContactRatePerMinute < 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must not be negative")
	}
	if c.GitHub.CacheTTL < 0 {
		return fmt.Errorf("STATS_CACHE_TTL must not be negative")
	}
	if c.GitHub.Org == "" {
		return fmt.Errorf("GITHUB_ORG is required")
	}
	if c.Mail.From == "" || c.Mail.To == "" {
		return fmt.Errorf("CONTACT_FROM and CONTACT_TO are required")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
