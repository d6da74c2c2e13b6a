package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NIDHI_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Provider.Mode != "sandbox" {
		t.Fatalf("provider mode = %q", cfg.Provider.Mode)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NIDHI_API_BASE_URL", "https://api.example.test")
	t.Setenv("NIDHI_API_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.test" {
		t.Fatalf("env override not applied, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", cfg.API.Timeout)
	}
}

func TestSaveThenLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NIDHI_CONFIG", filepath.Join(home, "config.toml"))

	in := Config{
		API:      APIConfig{BaseURL: "https://saas.example.test", Timeout: 10 * time.Second},
		Provider: ProviderConfig{Mode: "hosted"},
		UI:       UIConfig{CurrencySymbol: "₹", FinancialYear: "2025-26"},
		Data:     DataConfig{Path: filepath.Join(home, "nidhi.db")},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.toml")); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.API.BaseURL != in.API.BaseURL || out.Provider.Mode != "hosted" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
