package cmd

import (
	"github.com/spf13/cobra"
)

var apiPort int

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the dashboard HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(handler)

		return handler.StartApi(apiPort)
	},
}

func init() {
	apiCmd.Flags().IntVar(&apiPort, "port", 3009, "port to listen on")
}
