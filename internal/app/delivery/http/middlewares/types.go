package middlewares

import (
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	// ImportQuota is optional; nil leaves uploads unmetered.
	ImportQuota contracts.ImportQuota
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}
