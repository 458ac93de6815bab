package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKeyAndSecret(t *testing.T) {
	t.Setenv("RPM_APP_GEMINI_API_KEY", "")
	t.Setenv("RPM_APP_AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without gemini api key")
	}

	t.Setenv("RPM_APP_GEMINI_API_KEY", "test-key")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without jwt secret")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("RPM_APP_GEMINI_API_KEY", "test-key")
	t.Setenv("RPM_APP_AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-3-flash-preview" {
		t.Fatalf("unexpected model: %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 180*time.Second || cfg.Gemini.MaxRetries != 3 {
		t.Fatalf("unexpected gemini config: %#v", cfg.Gemini)
	}
	if cfg.Form.MaxSessions != 12 {
		t.Fatalf("unexpected max sessions: %d", cfg.Form.MaxSessions)
	}
	if len(cfg.Auth.Users) != 11 {
		t.Fatalf("unexpected allowlist size: %d", len(cfg.Auth.Users))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RPM_APP_GEMINI_API_KEY", "test-key")
	t.Setenv("RPM_APP_AUTH_JWT_SECRET", "test-secret")
	t.Setenv("RPM_APP_SERVER_PORT", "9090")
	t.Setenv("RPM_APP_GEMINI_MODEL", "gemini-custom")
	t.Setenv("RPM_APP_FORM_MAX_SESSIONS", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != ":9090" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-custom" {
		t.Fatalf("unexpected model: %q", cfg.Gemini.Model)
	}
	if cfg.Form.MaxSessions != 6 {
		t.Fatalf("unexpected max sessions: %d", cfg.Form.MaxSessions)
	}
}
