package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/ledger"
	"github.com/rustyeddy/papertrade/markethours"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "A paper-trading simulator and strategy backtester",
	Long: `Papertrade simulates equity trading without real money.

It provides tools for:
  - Placing simulated market orders against a virtual cash/position ledger
  - Backtesting rule-based strategies over historical daily candles
  - Browsing the order, trade and position journals
  - Streaming live quotes into a local price cache`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
}

// loadConfig reads the --config file when given, otherwise defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// openStore builds the journal store the config names.
func openStore(cfg *config.Config) (journal.Store, error) {
	switch cfg.Journal.Type {
	case "memory":
		return journal.NewMemory(), nil
	default:
		return journal.NewSQLite(cfg.Journal.DBPath)
	}
}

// openLedger wires store, market-hours policy and account seed together.
func openLedger(cfg *config.Config) (*ledger.Ledger, journal.Store, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	led, err := ledger.New(store, ledger.Config{
		StartingBalance: cfg.Account.Balance,
		Hours: markethours.Policy{
			Location:    loc,
			OpenMinute:  cfg.OpenMinute(),
			CloseMinute: cfg.CloseMinute(),
			Bypass:      cfg.Market.AllowAfterHours,
		},
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return led, store, nil
}
