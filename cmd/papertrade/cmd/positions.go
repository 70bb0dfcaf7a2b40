package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Show funds and open positions",
	RunE:  runPositions,
}

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Show the account cash record",
	RunE:  runFunds,
}

func init() {
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(fundsCmd)
}

func runFunds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	led, store, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	funds := led.Funds()
	fmt.Printf("Available Cash:   %.2f\n", funds.AvailableCash)
	fmt.Printf("Realized P&L:     %.2f\n", funds.RealizedPnl)
	fmt.Printf("Total Trades:     %d\n", funds.TotalTrades)
	return nil
}

func runPositions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	led, store, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	funds := led.Funds()
	fmt.Printf("Available Cash:   %.2f\n", funds.AvailableCash)
	fmt.Printf("Realized P&L:     %.2f\n", funds.RealizedPnl)
	fmt.Printf("Total Trades:     %d\n\n", funds.TotalTrades)

	positions := led.Positions()
	if len(positions) == 0 {
		fmt.Println("No open positions.")
		return nil
	}

	fmt.Printf("%-12s %10s %12s %12s\n", "SYMBOL", "QTY", "AVG PRICE", "REALIZED")
	for _, p := range positions {
		fmt.Printf("%-12s %10.2f %12.2f %12.2f\n",
			p.Symbol, p.Quantity, p.AvgPrice, p.RealizedPnl)
	}
	return nil
}
