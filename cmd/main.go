package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title Geo Incident Consensus API
// @version 1.0
// @description Crowd-sourced incident reports consolidated into incidents, verified by community votes and claimed by responders.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := rootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "incidentd",
		Short:         "Incident consolidation and consensus service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := serveCommand()
	rootCmd.AddCommand(serveCmd, migrateCommand())
	// без подкоманды запускаем сервер
	rootCmd.RunE = serveCmd.RunE

	return rootCmd
}
