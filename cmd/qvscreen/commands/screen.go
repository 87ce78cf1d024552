package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/engine/runner"
	"github.com/wonny/qvscreen/internal/export"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a screening pass",
	Long: `Runs the screener: score, value, filter and rank.

Input is either a metrics JSON file (offline), a symbol list, or the S&P 500
universe fetched live.

Examples:
  qvscreen screen --metrics metrics.json
  qvscreen screen --symbols AAPL,MSFT,JNJ --csv results.csv
  qvscreen screen --criteria dividend.yaml`,
	RunE: runScreen,
}

var (
	screenMetricsPath string
	screenSymbols     string
	screenWorkers     int
	screenCSVPath     string
	screenJSONPath    string
	screenTop         int
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVar(&screenMetricsPath, "metrics", "", "metrics JSON file (skips fetching)")
	screenCmd.Flags().StringVar(&screenSymbols, "symbols", "", "comma-separated symbols to screen")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 0, "scoring workers (default from config)")
	screenCmd.Flags().StringVar(&screenCSVPath, "csv", "", "write passing stocks to a CSV file")
	screenCmd.Flags().StringVar(&screenJSONPath, "json", "", "write the full report to a JSON file")
	screenCmd.Flags().IntVar(&screenTop, "top", 20, "number of ranked stocks to print")
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	crit, err := loadCriteria(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Resolve the payload: file, symbols, or live universe.
	var payload contracts.MetricsPayload
	var fetchErrs []contracts.StockError

	if screenMetricsPath == "" && cfg.Screen.MetricsPath != "" {
		screenMetricsPath = cfg.Screen.MetricsPath
	}

	switch {
	case screenMetricsPath != "":
		data, err := os.ReadFile(screenMetricsPath)
		if err != nil {
			return fmt.Errorf("read metrics file: %w", err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("parse metrics file: %w", err)
		}
	default:
		yahooClient, wikiClient := buildFetchers(cfg, log)

		symbols := splitSymbols(screenSymbols)
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

		payload, fetchErrs = yahooClient.FetchAll(ctx, symbols)
	}

	if len(payload) == 0 {
		return fmt.Errorf("no stocks to screen")
	}

	workers := screenWorkers
	if workers <= 0 {
		workers = cfg.Screen.Workers
	}

	report, err := runner.NewRunner(log).Run(ctx, payload, crit, runner.Config{Workers: workers})
	if err != nil {
		return err
	}
	report.Errors = append(fetchErrs, report.Errors...)

	printReport(report, screenTop)

	if screenCSVPath != "" {
		if err := export.WriteCSVFile(screenCSVPath, report.Passed); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d passing stocks to %s\n", len(report.Passed), screenCSVPath)
	}
	if screenJSONPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(screenJSONPath, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Wrote full report to %s\n", screenJSONPath)
	}

	return nil
}

func splitSymbols(raw string) []string {
	if raw == "" {
		return nil
	}
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, strings.ToUpper(s))
		}
	}
	return symbols
}

func printReport(report *contracts.RunReport, top int) {
	fmt.Printf("=== Screening: %s ===\n", report.CriteriaName)
	fmt.Printf("Universe %d | Passed %d | Filtered %d | Errors %d\n\n",
		report.Universe, len(report.Passed), len(report.Filtered), len(report.Errors))

	fmt.Printf("%-4s %-8s %-7s %-5s %10s %12s %8s\n",
		"#", "SYMBOL", "SCORE", "GRADE", "PRICE", "BASE IV", "MoS")

	for i, r := range report.Passed {
		if top > 0 && i >= top {
			fmt.Printf("... and %d more\n", len(report.Passed)-top)
			break
		}

		base, _ := r.ScenarioFor(contracts.ScenarioBase)
		fmt.Printf("%-4d %-8s %-7s %-5s %10s %12s %8s\n",
			i+1, r.Symbol,
			formatMetric(r.Overall, 1),
			r.Grade,
			formatMetric(r.Metrics.Price, 2),
			formatMetric(base.IntrinsicValue, 2),
			formatPercent(base.MarginOfSafety),
		)
	}

	if len(report.Errors) > 0 {
		fmt.Printf("\nErrors:\n")
		for _, e := range report.Errors {
			fmt.Printf("  %-8s [%s] %s\n", e.Symbol, e.Stage, e.Message)
		}
	}
}

func formatMetric(m contracts.Metric, decimals int) string {
	v, ok := m.Float()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func formatPercent(m contracts.Metric) string {
	v, ok := m.Float()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", v*100)
}
