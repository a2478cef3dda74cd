package mappers

import "patient-sync-service/internal/app/models"

// CitizenshipLookup resolves a citizenship code against the reference table.
// Get reports false for blank or unknown codes.
type CitizenshipLookup interface {
	Get(code string) (models.CitizenshipEntry, bool)
}
