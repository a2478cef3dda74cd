package contracts

import (
	"context"
	"net/url"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
)

type ObservationUsecase interface {
	AddObservation(ctx context.Context, patientID, kind string, request *requests.ObservationRequest) (*responses.Observation, error)
	GetObservation(ctx context.Context, observationID string) (*responses.Observation, error)
	GetObservationsForPatient(ctx context.Context, patientID, kind string) ([]responses.Observation, error)
}

type ObservationFhirClient interface {
	CreateObservation(ctx context.Context, request *fhir_dto.Observation) (*fhir_dto.Observation, error)
	FindObservationByID(ctx context.Context, observationID string) (*fhir_dto.Observation, bool, error)
	SearchObservations(ctx context.Context, params url.Values) ([]fhir_dto.Observation, error)
}
