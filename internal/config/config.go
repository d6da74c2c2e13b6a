package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API      APIConfig
	Provider ProviderConfig
	UI       UIConfig
	Data     DataConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ProviderConfig selects the aggregation-provider flow implementation.
type ProviderConfig struct {
	Mode string // "sandbox" or "hosted"
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string
	FinancialYear  string
}

// DataConfig holds local storage settings.
type DataConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix NIDHI_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("provider.mode", "sandbox")
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.financial_year", "2026-27")
	v.SetDefault("data.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "nidhi", "nidhi.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NIDHI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "nidhi"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NIDHI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	timeout, err := time.ParseDuration(v.GetString("api.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("parse api.timeout: %w", err)
	}

	c := Config{
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: timeout,
		},
		Provider: ProviderConfig{Mode: v.GetString("provider.mode")},
		UI: UIConfig{
			CurrencySymbol: v.GetString("ui.currency_symbol"),
			FinancialYear:  v.GetString("ui.financial_year"),
		},
		Data: DataConfig{Path: v.GetString("data.path")},
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by setup tooling; the bearer credential never lives here.
func Save(cfg Config) error {
	path := os.Getenv("NIDHI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "nidhi", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("provider.mode", cfg.Provider.Mode)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.financial_year", cfg.UI.FinancialYear)
	v.Set("data.path", cfg.Data.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
