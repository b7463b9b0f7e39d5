// Package config loads and validates the budgetwise TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config holds all budgetwise configuration. Flags override these values;
// the file supplies defaults only.
type Config struct {
	Forecast ForecastConfig `toml:"forecast"`
	Budget   BudgetConfig   `toml:"budget"`
	Ledger   LedgerConfig   `toml:"ledger"`
}

// ForecastConfig holds forecast settings.
type ForecastConfig struct {
	HorizonDays int    `toml:"horizon_days" validate:"min=30,max=365"`
	Model       string `toml:"model" validate:"oneof=seasonal forest boost"`
}

// BudgetConfig holds income and savings-target settings.
type BudgetConfig struct {
	MonthlyIncome    float64 `toml:"monthly_income" validate:"gte=0"`
	SavingsTargetPct float64 `toml:"savings_target_pct" validate:"gte=0,lte=0.8"`
}

// LedgerConfig holds column names and synonym-table overrides.
type LedgerConfig struct {
	DateColumn     string            `toml:"date_column,omitempty"`
	AmountColumn   string            `toml:"amount_column,omitempty"`
	CategoryColumn string            `toml:"category_column,omitempty"`
	Synonyms       map[string]string `toml:"synonyms,omitempty"`
}

var valid = validator.New()

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Forecast: ForecastConfig{
			HorizonDays: 90,
			Model:       "seasonal",
		},
		Budget: BudgetConfig{
			MonthlyIncome:    5000,
			SavingsTargetPct: 0.2,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetwise")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists reports whether a config file is present.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file, returning defaults if it doesn't exist.
// The result is validated.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks the configured ranges: horizon 30-365, non-negative
// income, savings target in [0, 0.8], known model name.
func (c Config) Validate() error {
	if err := valid.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
