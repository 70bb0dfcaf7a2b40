package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "PAPER-001", cfg.Account.ID)
	assert.Equal(t, 100000.0, cfg.Account.Balance)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.Equal(t, 9*60+15, cfg.OpenMinute())
	assert.Equal(t, 15*60+15, cfg.CloseMinute())

	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
account:
  id: TEST-42
  balance: 250000
journal:
  type: memory
market:
  open: "09:30"
  close: "16:00"
  timezone: UTC
  allow_after_hours: true
backtest:
  starting_balance: 50000
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "TEST-42", cfg.Account.ID)
	assert.Equal(t, 250000.0, cfg.Account.Balance)
	assert.Equal(t, "memory", cfg.Journal.Type)
	assert.True(t, cfg.Market.AllowAfterHours)
	assert.Equal(t, 9*60+30, cfg.OpenMinute())
	assert.Equal(t, 50000.0, cfg.Backtest.StartingBalance)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"account":{"id":"J1","balance":1000},"journal":{"type":"memory"}}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "J1", cfg.Account.ID)
	// Unset sections keep their defaults.
	assert.Equal(t, "09:15", cfg.Market.Open)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Default()
	cfg.Account.ID = "ROUND-1"
	cfg.Account.Balance = 42_000

	for _, name := range []string{"config.yaml", "config.json"} {
		path := filepath.Join(dir, name)
		assert.NoError(t, cfg.SaveToFile(path))

		got, err := LoadFromFile(path)
		assert.NoError(t, err)
		assert.Equal(t, cfg, got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_balance", func(c *Config) { c.Account.Balance = 0 }},
		{"bad_journal_type", func(c *Config) { c.Journal.Type = "postgres" }},
		{"sqlite_without_path", func(c *Config) { c.Journal.DBPath = "" }},
		{"bad_open", func(c *Config) { c.Market.Open = "9am" }},
		{"close_before_open", func(c *Config) { c.Market.Close = "08:00" }},
		{"bad_timezone", func(c *Config) { c.Market.Timezone = "Mars/Olympus" }},
		{"zero_backtest_balance", func(c *Config) { c.Backtest.StartingBalance = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
