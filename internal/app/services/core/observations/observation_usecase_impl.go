package observations

import (
	"context"
	"net/url"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/mappers"
	"patient-sync-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type observationUsecase struct {
	ObservationFhirClient contracts.ObservationFhirClient
	PatientFhirClient     contracts.PatientFhirClient
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewObservationUsecase(
	observationFhirClient contracts.ObservationFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	logger *zap.Logger,
) contracts.ObservationUsecase {
	return &observationUsecase{
		ObservationFhirClient: observationFhirClient,
		PatientFhirClient:     patientFhirClient,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *observationUsecase) AddObservation(ctx context.Context, patientID, kindKey string, request *requests.ObservationRequest) (*responses.Observation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("observationUsecase.AddObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	kind, ok := models.ObservationKindByKey(kindKey)
	if !ok {
		return nil, exceptions.ErrUnknownObservationKind(nil, kindKey)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	_, found, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}

	observation := mappers.BuildFhirObservation(models.NewObservation(kind, request.Value, uc.now()), patientID)
	created, err := uc.ObservationFhirClient.CreateObservation(ctx, observation)
	if err != nil {
		uc.Log.Error("observationUsecase.AddObservation error calling ObservationFhirClient.CreateObservation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !kind.WithinNormalRange(request.Value) {
		uc.Log.Info("observationUsecase.AddObservation value outside normal range",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObservationIDKey, created.ID),
			zap.Float64("value", request.Value),
		)
	}

	response := mappers.BuildObservationResponse(created)
	return &response, nil
}

func (uc *observationUsecase) GetObservation(ctx context.Context, observationID string) (*responses.Observation, error) {
	observation, found, err := uc.ObservationFhirClient.FindObservationByID(ctx, observationID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrObservationNotFound(nil, observationID)
	}

	response := mappers.BuildObservationResponse(observation)
	return &response, nil
}

// GetObservationsForPatient narrows by kind when kindKey is set. The registry filter
// is repeated locally because not every server honours the code parameter.
func (uc *observationUsecase) GetObservationsForPatient(ctx context.Context, patientID, kindKey string) ([]responses.Observation, error) {
	params := url.Values{}
	params.Set(constvars.FhirSearchParamSubject, mappers.PatientReference(patientID).Reference)

	var kind models.ObservationKind
	if kindKey != "" {
		var ok bool
		kind, ok = models.ObservationKindByKey(kindKey)
		if !ok {
			return nil, exceptions.ErrUnknownObservationKind(nil, kindKey)
		}
		params.Set(constvars.FhirSearchParamCode, kind.System+"|"+kind.Code)
	}

	observations, err := uc.ObservationFhirClient.SearchObservations(ctx, params)
	if err != nil {
		return nil, err
	}

	if kindKey != "" {
		filtered := make([]fhir_dto.Observation, 0, len(observations))
		for i := range observations {
			if mappers.HasObservationCode(&observations[i], kind.System, kind.Code) {
				filtered = append(filtered, observations[i])
			}
		}
		observations = filtered
	}

	return mappers.BuildObservationResponses(observations), nil
}
