// Package cmd is the operator command line for the patient sync service.
package cmd

import (
	"os"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/drivers/logger"
	"patient-sync-service/internal/app/services/core/citizenship"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// console is set up before any subcommand runs.
var console *logrus.Logger

type environment struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *zap.Logger
}

var rootCmd = &cobra.Command{
	Use:   "patientsync",
	Short: "Operator tools for synchronizing patient tables into the registry",
	Long: `patientsync runs the bulk patient import once from the command line and
inspects the citizenship reference table. Configuration is read from the same
environment variables (or .env file) as the HTTP service.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		console = logger.NewLogrusLogger(config.NewDriverConfig())
		if verbose {
			console.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log service internals as structured JSON")
}

func loadEnvironment() environment {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := zap.NewNop()
	if verbose {
		log = logger.NewZapLogger(driverConfig, internalConfig)
	}
	return environment{driverConfig: driverConfig, internalConfig: internalConfig, log: log}
}

func loadCitizenships(cmd *cobra.Command, env environment) (contracts.CitizenshipService, error) {
	service := citizenship.NewCitizenshipService(env.internalConfig.Resources.CitizenshipCsvFilename, env.log)
	if err := service.Initialize(cmd.Context()); err != nil {
		return nil, err
	}
	return service, nil
}
