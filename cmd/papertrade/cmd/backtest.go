package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/backtest"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/marketdata"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a strategy backtest over a candle dataset",
	Long: `Backtest replays a daily candle CSV through one of the catalog
strategies and prints the resulting trade log and performance metrics.

The dataset needs more bars than the fixed warm-up offset (200); 250+ daily
bars are recommended. Use "papertrade strategies" to list available ids.

Example:
  papertrade backtest -f data/reliance.csv -s EMA_CROSSOVER`,
	RunE: runBacktest,
}

var (
	btCandlesPath string
	btStrategy    string
	btDemoBars    int
	btShowTrades  bool
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btCandlesPath, "file", "f", "", "candle CSV (time,open,high,low,close,volume)")
	backtestCmd.Flags().StringVarP(&btStrategy, "strategy", "s", "", "strategy id (required)")
	backtestCmd.Flags().IntVar(&btDemoBars, "demo-bars", 0, "use a synthetic random-walk dataset of N bars instead of a file")
	backtestCmd.Flags().BoolVar(&btShowTrades, "trades", false, "print the individual simulated trades")

	backtestCmd.MarkFlagRequired("strategy")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var candles []market.Candle
	switch {
	case btDemoBars > 0:
		candles = marketdata.RandomWalkCandles(btDemoBars, 1000, 42)
	case btCandlesPath != "":
		candles, err = market.LoadCandlesCSV(btCandlesPath)
		if err != nil {
			return fmt.Errorf("load candles: %w", err)
		}
	default:
		return fmt.Errorf("either --file or --demo-bars is required")
	}

	engine := backtest.NewEngine(cfg.Backtest.StartingBalance)
	report, err := engine.Run(btStrategy, candles)
	if err != nil {
		return err
	}

	fmt.Printf("Backtest over %d bars\n\n", len(candles))
	fmt.Print(report.Summary())

	if btShowTrades {
		fmt.Println()
		for i, t := range report.Trades {
			fmt.Printf("%3d %-5s entry %10.2f @ %s  exit %10.2f @ %s  p&l %10.2f\n",
				i+1, t.Direction,
				t.EntryPrice, t.EntryTime.Format("2006-01-02"),
				t.ExitPrice, t.ExitTime.Format("2006-01-02"),
				t.Profit)
		}
	}
	return nil
}
