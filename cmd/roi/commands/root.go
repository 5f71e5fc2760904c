package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roi",
	Short: "AnyRoad ROI Calculator - experience program cost/benefit engine",
	Long: `AnyRoad ROI Calculator Unified CLI

Computes the financial case for an experience program: implementation
costs, annual benefits, ROI, payback period and NPV, with plain-language
interpretation.

Usage:
  go run ./cmd/roi [command]

Examples:
  go run ./cmd/roi calc --defaults
  go run ./cmd/roi calc --input scenario.yaml
  go run ./cmd/roi sensitivity --param attribution_factor
  go run ./cmd/roi api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
