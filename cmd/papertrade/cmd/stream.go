package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/marketdata"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Consume a live quote stream into the local price cache",
	Long: `Stream connects to a websocket quote publisher and keeps the latest
LTP per symbol, printing each update. Stop with Ctrl-C.

Example:
  papertrade stream -u ws://localhost:9001/stream`,
	RunE: runStream,
}

var (
	streamURL     string
	streamSymbols []string
)

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().StringVarP(&streamURL, "url", "u", "", "websocket quote stream URL (required)")
	streamCmd.Flags().StringSliceVarP(&streamSymbols, "symbols", "s", nil, "only print these symbols (default all)")
	streamCmd.MarkFlagRequired("url")
}

func runStream(cmd *cobra.Command, args []string) error {
	store := market.NewQuoteStore()
	client, err := marketdata.NewStreamClient(marketdata.StreamConfig{URL: streamURL}, store)
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(streamSymbols))
	for _, s := range streamSymbols {
		wanted[strings.ToUpper(s)] = true
	}

	client.OnQuote = func(q market.Quote) {
		if len(wanted) > 0 && !wanted[q.Symbol] {
			return
		}
		fmt.Printf("%-12s LTP %10.2f  %+8.2f (%+.2f%%)  %s\n",
			q.Symbol, q.LTP, q.Change, q.ChangePct, q.Time.Format("15:04:05"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return client.Run(ctx)
}
