package contracts

import (
	"context"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/mappers"
)

type CitizenshipService interface {
	// Initialize loads the table once; later calls are no-ops.
	Initialize(ctx context.Context) error
	// Reload builds a new table and swaps it in, returning its size.
	Reload(ctx context.Context) (int, error)
	Get(code string) (models.CitizenshipEntry, bool)
	// Lookup returns the table current at call time. It never changes underneath the caller.
	Lookup() mappers.CitizenshipLookup
}
