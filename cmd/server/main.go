package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"pusaka-newsletter/internal/logger"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "pusaka-newsletter",
	Short:         "Newsletter platform API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Command failed",
			slog.String("error", err.Error()))
	}
}
