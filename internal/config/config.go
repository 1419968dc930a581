// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. DatabaseURL is the only required value;
// the OIDC fields are optional and federated sign-in stays disabled without
// them.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	WebDir      string `env:"WEB_DIR" envDefault:"web"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Debug       bool   `env:"DEBUG"`

	OIDCIssuer       string `env:"OIDC_ISSUER"`
	OIDCClientID     string `env:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `env:"OIDC_REDIRECT_URL"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// OIDCEnabled reports whether enough OIDC settings are present to offer
// federated sign-in.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != "" && c.OIDCClientSecret != "" && c.OIDCRedirectURL != ""
}
