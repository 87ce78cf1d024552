package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch fundamentals to a metrics JSON file",
	Long: `Fetches the S&P 500 universe (or an explicit symbol list) and their
fundamentals, and writes a metrics JSON file for offline screening.

Examples:
  qvscreen fetch --out metrics.json
  qvscreen fetch --symbols AAPL,MSFT --out metrics.json`,
	RunE: runFetch,
}

var (
	fetchSymbols string
	fetchOut     string
	fetchLimit   int
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchSymbols, "symbols", "", "comma-separated symbols (default: S&P 500)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "metrics.json", "output file")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 0, "cap the universe size (0 = config default)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if fetchLimit > 0 {
		cfg.Fetch.UniverseLimit = fetchLimit
	}

	ctx := context.Background()
	yahooClient, wikiClient := buildFetchers(cfg, log)

	symbols := splitSymbols(fetchSymbols)
	if len(symbols) == 0 {
		constituents, err := wikiClient.FetchConstituents(ctx)
		if err != nil {
			return fmt.Errorf("fetch universe: %w", err)
		}
		for i, con := range constituents {
			if cfg.Fetch.UniverseLimit > 0 && i >= cfg.Fetch.UniverseLimit {
				break
			}
			symbols = append(symbols, con.Symbol)
		}
	}

	fmt.Printf("Fetching fundamentals for %d symbols...\n", len(symbols))

	payload, fetchErrs := yahooClient.FetchAll(ctx, symbols)
	if len(payload) == 0 {
		return fmt.Errorf("no fundamentals fetched")
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	if err := os.WriteFile(fetchOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fetchOut, err)
	}

	fmt.Printf("Wrote %d stocks to %s (%d failed)\n", len(payload), fetchOut, len(fetchErrs))
	for _, e := range fetchErrs {
		fmt.Printf("  %-8s %s\n", e.Symbol, e.Message)
	}

	return nil
}
