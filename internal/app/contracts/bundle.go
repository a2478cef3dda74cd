package contracts

import (
	"context"
	"patient-sync-service/internal/pkg/fhir_dto"
)

type BundleFhirClient interface {
	// PostTransactionBundle submits a transaction bundle and returns the transaction-response bundle.
	PostTransactionBundle(ctx context.Context, bundle *fhir_dto.FHIRBundle) (*fhir_dto.FHIRBundle, error)
}
