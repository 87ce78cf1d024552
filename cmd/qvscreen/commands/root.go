package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	criteriaPath string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "qvscreen",
	Short: "Quality-value stock screener",
	Long: `qvscreen - quality-value stock screener

Scores stocks across six fundamental categories, estimates intrinsic value
with bull/base/bear DCF scenarios, and filters and ranks the result.

Examples:
  qvscreen fetch --out metrics.json
  qvscreen screen --metrics metrics.json --csv results.csv
  qvscreen criteria validate my-criteria.yaml
  qvscreen api
  qvscreen scheduler`,
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&criteriaPath, "criteria", "", "criteria YAML file (default is built-in criteria)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
