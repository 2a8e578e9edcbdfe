package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pusaka-newsletter/internal/config"
	"pusaka-newsletter/internal/infrastructure/database"
	"pusaka-newsletter/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logger.Configure(cfg.LogLevel)

		direction := database.Direction(args[0])
		if err := database.Migrate(cfg.DatabaseURL(), cfg.MigrationsPath, direction); err != nil {
			return err
		}

		logger.Info("Migrations applied",
			slog.String("direction", string(direction)),
			slog.String("path", cfg.MigrationsPath))
		return nil
	},
}
