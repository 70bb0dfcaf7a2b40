package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/ledger"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place a simulated market order",
	Long: `Order applies one immediate-fill market order against the ledger.

Orders are accepted during market hours only (default 09:15-15:15 IST);
set market.allow_after_hours in the config to bypass for testing.

Example:
  papertrade order --symbol RELIANCE --side BUY --qty 10 --price 2841.50`,
	RunE: runOrder,
}

var (
	ordSymbol string
	ordSide   string
	ordQty    float64
	ordPrice  float64
)

func init() {
	rootCmd.AddCommand(orderCmd)

	orderCmd.Flags().StringVarP(&ordSymbol, "symbol", "s", "", "instrument symbol (required)")
	orderCmd.Flags().StringVar(&ordSide, "side", "", "BUY or SELL (required)")
	orderCmd.Flags().Float64VarP(&ordQty, "qty", "q", 0, "order quantity (required)")
	orderCmd.Flags().Float64VarP(&ordPrice, "price", "p", 0, "fill price (required)")

	orderCmd.MarkFlagRequired("symbol")
	orderCmd.MarkFlagRequired("side")
	orderCmd.MarkFlagRequired("qty")
	orderCmd.MarkFlagRequired("price")
}

func runOrder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	led, store, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := led.PlaceOrder(context.Background(), ledger.OrderRequest{
		Symbol:   strings.ToUpper(ordSymbol),
		Side:     ledger.Side(strings.ToUpper(ordSide)),
		Quantity: ordQty,
		Price:    ordPrice,
	})
	if err != nil {
		var insufficient *ledger.InsufficientFundsError
		switch {
		case errors.As(err, &insufficient):
			return fmt.Errorf("order rejected: %w", insufficient)
		case errors.Is(err, ledger.ErrMarketClosed):
			return fmt.Errorf("order rejected: %w", err)
		default:
			return err
		}
	}

	funds := led.Funds()
	fmt.Printf("Order %s %s\n", res.OrderID, res.Status)
	fmt.Printf("  Cash: %.2f  Realized P&L: %.2f  Trades: %d\n",
		funds.AvailableCash, funds.RealizedPnl, funds.TotalTrades)
	return nil
}
