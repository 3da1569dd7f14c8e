package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erazemk/freshkeeper/internal/api"
)

var keys = []string{
	"FRESHKEEPER_API_BASE_URL",
	"FRESHKEEPER_HTTP_TIMEOUT_SECONDS",
	"FRESHKEEPER_TOKEN",
	"FRESHKEEPER_EMAIL",
	"FRESHKEEPER_PASSWORD",
	"FRESHKEEPER_LANG",
	"FRESHKEEPER_LOG",
	"FRESHKEEPER_DEBUG",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != api.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.Debug {
		t.Error("expected debug off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRESHKEEPER_API_BASE_URL", "https://api.example.com")
	t.Setenv("FRESHKEEPER_HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("FRESHKEEPER_DEBUG", "true")
	t.Setenv("FRESHKEEPER_EMAIL", "ana@example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("unexpected base URL %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.HTTPTimeout)
	}
	if !cfg.Debug {
		t.Error("expected debug on")
	}
	if cfg.Email != "ana@example.com" {
		t.Errorf("unexpected email %q", cfg.Email)
	}
}

func TestInvalidTimeoutUsesDefault(t *testing.T) {
	clearEnv(t)

	for _, v := range []string{"abc", "0", "-4"} {
		t.Setenv("FRESHKEEPER_HTTP_TIMEOUT_SECONDS", v)
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.HTTPTimeout != api.DefaultTimeout {
			t.Errorf("timeout %q: expected default, got %v", v, cfg.HTTPTimeout)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRESHKEEPER_LANG", "es")

	path := filepath.Join(t.TempDir(), ".env")
	data := "FRESHKEEPER_API_BASE_URL=http://10.0.2.2:8000\nFRESHKEEPER_LANG=en\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://10.0.2.2:8000" {
		t.Errorf("expected base URL from .env, got %q", cfg.APIBaseURL)
	}
	if cfg.Lang != "es" {
		t.Errorf("expected environment to win over .env, got %q", cfg.Lang)
	}
}

func TestMissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("expected missing .env to be ignored, got %v", err)
	}
}
