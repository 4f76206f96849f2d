// Package config loads and saves shelflife configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all shelflife configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds report and budget preferences.
type GeneralConfig struct {
	DefaultBudget float64 `toml:"default_budget"`
	SkipRows      int     `toml:"skip_rows"`
	ReportDir     string  `toml:"report_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// envOverrides are applied on top of the config file.
// e.g. SHELFLIFE_BUDGET=250000 shelflife report q3.csv
type envOverrides struct {
	Budget   *float64 `envconfig:"BUDGET"`
	SkipRows *int     `envconfig:"SKIP_ROWS"`
	Theme    string   `envconfig:"THEME"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultBudget: 100000,
			SkipRows:      3,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shelflife")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "shelflife")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies SHELFLIFE_* environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("shelflife", &env); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	if env.Budget != nil {
		cfg.General.DefaultBudget = *env.Budget
	}
	if env.SkipRows != nil {
		cfg.General.SkipRows = *env.SkipRows
	}
	if env.Theme != "" {
		cfg.Appearance.Theme = env.Theme
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
