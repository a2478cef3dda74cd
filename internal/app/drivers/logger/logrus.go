package logger

import (
	"os"
	"patient-sync-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the operator console logger used by the CLI.
func NewLogrusLogger(driverConfig *config.DriverConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
