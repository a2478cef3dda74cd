package contracts

import (
	"context"
	"net/url"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
)

type MedicationUsecase interface {
	GetMedicationsForPatient(ctx context.Context, patientID string) ([]responses.Medication, error)
}

type MedicationFhirClient interface {
	FindMedicationByID(ctx context.Context, medicationID string) (*fhir_dto.Medication, bool, error)
	SearchMedicationRequests(ctx context.Context, params url.Values) ([]fhir_dto.MedicationRequest, error)
}
