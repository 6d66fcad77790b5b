package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "booking-service",
	Short: "Telehealth booking service: session lifecycle, live countdown tiers",
	Long:  `HTTP + WebSocket API. Commands: api, catalog.`,
	RunE:  runAPI, // default: run API (same as "booking-service api")
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(catalogCmd)
}

// Execute runs the root command and returns the error (for main to log.Fatal).
func Execute() error {
	return rootCmd.Execute()
}
