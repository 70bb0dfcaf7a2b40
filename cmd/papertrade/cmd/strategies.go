package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/strategies"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the strategy catalog",
	RunE:  runStrategies,
}

var strategiesVerbose bool

func init() {
	rootCmd.AddCommand(strategiesCmd)
	strategiesCmd.Flags().BoolVarP(&strategiesVerbose, "verbose", "v", false, "include descriptions and parameters")
}

func runStrategies(cmd *cobra.Command, args []string) error {
	for _, s := range strategies.List() {
		fmt.Printf("%-26s %s\n", s.ID(), s.Name())
		if !strategiesVerbose {
			continue
		}
		fmt.Printf("    %s\n", s.Description())

		params := s.Params()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("    %s = %v\n", k, params[k])
		}
		fmt.Println()
	}
	return nil
}
