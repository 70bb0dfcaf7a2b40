package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/journal"
)

var historyLimit int

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List recent orders, newest first",
	RunE:  runOrders,
}

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List recent trades, newest first",
	RunE:  runTrades,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order and trade logs to CSV",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(tradesCmd)
	rootCmd.AddCommand(exportCmd)

	ordersCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max rows")
	tradesCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max rows")
}

func runOrders(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	orders, err := store.ListOrders(historyLimit)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders.")
		return nil
	}

	fmt.Printf("%-27s %-12s %-5s %10s %12s %-9s %s\n",
		"ORDER ID", "SYMBOL", "SIDE", "QTY", "PRICE", "STATUS", "TIME")
	for _, o := range orders {
		fmt.Printf("%-27s %-12s %-5s %10.2f %12.2f %-9s %s\n",
			o.OrderID, o.Symbol, o.Side, o.Quantity, o.Price, o.Status,
			o.Time.Format(time.RFC3339))
	}
	return nil
}

func runTrades(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	trades, err := store.ListTrades(historyLimit)
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		fmt.Println("No trades.")
		return nil
	}

	fmt.Printf("%-27s %-12s %-5s %10s %12s %s\n",
		"TRADE ID", "SYMBOL", "SIDE", "QTY", "PRICE", "TIME")
	for _, t := range trades {
		fmt.Printf("%-27s %-12s %-5s %10.2f %12.2f %s\n",
			t.TradeID, t.Symbol, t.Side, t.Quantity, t.Price,
			t.Time.Format(time.RFC3339))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ordersPath := cfg.Journal.OrdersCSV
	if ordersPath == "" {
		ordersPath = "./orders.csv"
	}
	tradesPath := cfg.Journal.TradesCSV
	if tradesPath == "" {
		tradesPath = "./trades.csv"
	}

	orders, err := store.ListOrders(0)
	if err != nil {
		return err
	}
	if err := journal.ExportOrdersCSV(ordersPath, orders); err != nil {
		return err
	}

	trades, err := store.ListTrades(0)
	if err != nil {
		return err
	}
	if err := journal.ExportTradesCSV(tradesPath, trades); err != nil {
		return err
	}

	fmt.Printf("Exported %d orders to %s and %d trades to %s\n",
		len(orders), ordersPath, len(trades), tradesPath)
	return nil
}
