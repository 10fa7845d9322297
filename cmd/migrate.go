package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shenikar/geo_incident_consensus/internal/config"
	"github.com/shenikar/geo_incident_consensus/pkg/logger"
	"github.com/shenikar/geo_incident_consensus/pkg/postgres"
)

func migrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			applied, err := postgres.MigrateUp(cfg.MigrationsPath, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			log.WithField("changed", applied).Info("Database migrations applied successfully")
			return nil
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the given number of migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			if err := postgres.MigrateDown(cfg.MigrationsPath, cfg.DatabaseURL, steps); err != nil {
				return err
			}
			log.WithField("steps", steps).Info("Database migrations rolled back")
			return nil
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(upCmd, downCmd)
	return migrateCmd
}
