package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wealthsim",
	Short: "Investment plan simulator",
	Long: `wealthsim backtests periodic-contribution plans against historical
prices, projects them forward with a Monte Carlo regime model, or compounds
them at a fixed rate. It also serves the dashboard HTTP API.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(backtestCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(ingestCmd)
}
