package contracts

import (
	"context"
	"net/url"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.PatientRequest) (*responses.PatientDetail, error)
	UpdatePatient(ctx context.Context, request *requests.PatientRequest) (*responses.PatientDetail, error)
	DeletePatientByIdentifier(ctx context.Context, identifier string) (bool, error)
	FindPatientByIdentifier(ctx context.Context, identifier string) (*responses.PatientDetail, error)
	FindPatientByID(ctx context.Context, resourceID string) (*responses.PatientDetail, error)
	ListPatients(ctx context.Context, pageSize int) ([]responses.PatientDetail, error)
	FindPatientsByName(ctx context.Context, given, family string) ([]responses.PatientDetail, error)
	UpdatePatientMaritalStatus(ctx context.Context, resourceID, code string) (*responses.PatientDetail, error)
}

type PatientSyncUsecase interface {
	UploadPatients(ctx context.Context, fileName string, payload []byte) (*responses.ImportSummary, error)
	FindImportJobByID(ctx context.Context, jobID string) (*models.ImportJob, error)
}

// PatientFhirClient reports absence through the found flag; an error always means
// the registry could not be asked.
type PatientFhirClient interface {
	CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	DeletePatientByID(ctx context.Context, patientID string) error
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, bool, error)
	FindPatientByIdentifier(ctx context.Context, system, value string) (*fhir_dto.Patient, bool, error)
	SearchPatients(ctx context.Context, params url.Values) ([]fhir_dto.Patient, error)
}
