package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "papertrade.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Default().SaveToFile(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("Account:  id=%s balance=%.2f\n", cfg.Account.ID, cfg.Account.Balance)
		fmt.Printf("Journal:  type=%s db=%s\n", cfg.Journal.Type, cfg.Journal.DBPath)
		fmt.Printf("Market:   %s-%s %s after-hours=%v\n",
			cfg.Market.Open, cfg.Market.Close, cfg.Market.Timezone, cfg.Market.AllowAfterHours)
		fmt.Printf("Backtest: starting balance=%.2f\n", cfg.Backtest.StartingBalance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
