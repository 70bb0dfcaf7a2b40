// Package config loads the paper-trading configuration from YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Market   MarketConfig   `json:"market" yaml:"market"`
	Backtest BacktestConfig `json:"backtest" yaml:"backtest"`
}

// AccountConfig seeds the ledger's funds record.
type AccountConfig struct {
	ID      string  `json:"id" yaml:"id"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// JournalConfig selects and locates the durable store.
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "sqlite" or "memory"
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	OrdersCSV string `json:"orders_csv,omitempty" yaml:"orders_csv,omitempty"`
	TradesCSV string `json:"trades_csv,omitempty" yaml:"trades_csv,omitempty"`
}

// MarketConfig sets the trading window policy.
type MarketConfig struct {
	Open            string `json:"open" yaml:"open"`   // "09:15"
	Close           string `json:"close" yaml:"close"` // "15:15"
	Timezone        string `json:"timezone" yaml:"timezone"`
	AllowAfterHours bool   `json:"allow_after_hours" yaml:"allow_after_hours"`
}

// BacktestConfig sets the simulator baseline.
type BacktestConfig struct {
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
}

// Default returns a configuration with sensible defaults: the ledger seed and
// the backtest baseline share the same starting balance.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:      "PAPER-001",
			Balance: 100000,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./papertrade.sqlite",
		},
		Market: MarketConfig{
			Open:     "09:15",
			Close:    "15:15",
			Timezone: "Asia/Kolkata",
		},
		Backtest: BacktestConfig{
			StartingBalance: 100000,
		},
	}
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration; .yaml/.yml extensions get YAML,
// anything else JSON.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Backtest.StartingBalance <= 0 {
		return fmt.Errorf("backtest.starting_balance must be positive")
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite type")
		}
	case "memory":
	default:
		return fmt.Errorf("journal.type must be 'sqlite' or 'memory'")
	}
	open, err := parseClock(c.Market.Open)
	if err != nil {
		return fmt.Errorf("market.open: %w", err)
	}
	close, err := parseClock(c.Market.Close)
	if err != nil {
		return fmt.Errorf("market.close: %w", err)
	}
	if close <= open {
		return fmt.Errorf("market.close must be after market.open")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("market.timezone: %w", err)
	}
	return nil
}

// OpenMinute returns the market open as minutes from midnight.
func (c *Config) OpenMinute() int {
	m, _ := parseClock(c.Market.Open)
	return m
}

// CloseMinute returns the market close as minutes from midnight.
func (c *Config) CloseMinute() int {
	m, _ := parseClock(c.Market.Close)
	return m
}

// Location resolves the configured market timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Market.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Market.Timezone)
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("bad clock time %q (want HH:MM)", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
