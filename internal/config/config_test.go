package config_test

import (
	"testing"

	"habittracker/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/habits")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.WebDir != "web" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.OIDCEnabled() {
		t.Fatal("OIDC should be disabled without issuer settings")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestOIDCEnabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/habits")
	t.Setenv("OIDC_ISSUER", "https://accounts.google.com")
	t.Setenv("OIDC_CLIENT_ID", "id")
	t.Setenv("OIDC_CLIENT_SECRET", "secret")
	t.Setenv("OIDC_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.OIDCEnabled() {
		t.Fatal("expected OIDC enabled with all settings present")
	}
}
