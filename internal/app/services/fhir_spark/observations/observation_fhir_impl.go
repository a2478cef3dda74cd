package observations

import (
	"context"
	"net/url"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/services/fhir_spark"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type observationFhirClient struct {
	Client *fhir_spark.Client
	Log    *zap.Logger
}

func NewObservationFhirClient(client *fhir_spark.Client, logger *zap.Logger) contracts.ObservationFhirClient {
	return &observationFhirClient{
		Client: client,
		Log:    logger,
	}
}

func (c *observationFhirClient) CreateObservation(ctx context.Context, request *fhir_dto.Observation) (*fhir_dto.Observation, error) {
	requestID := utils.RequestIDFromContext(ctx)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	status, body, err := c.Client.Execute(ctx, constvars.MethodPost, c.Client.ResourceUrl(constvars.ResourceObservation), requestJSON)
	if err != nil {
		return nil, err
	}

	if status != constvars.StatusCreated && status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("observationFhirClient.CreateObservation FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourceObservation)
	}

	observation := new(fhir_dto.Observation)
	err = json.Unmarshal(body, observation)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
	}
	return observation, nil
}

func (c *observationFhirClient) FindObservationByID(ctx context.Context, observationID string) (*fhir_dto.Observation, bool, error) {
	requestID := utils.RequestIDFromContext(ctx)

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.ResourceUrl(constvars.ResourceObservation, observationID), nil)
	if err != nil {
		return nil, false, err
	}
	if fhir_spark.IsNotFound(status) {
		return nil, false, nil
	}
	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("observationFhirClient.FindObservationByID FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObservationIDKey, observationID),
			zap.Error(fhirErrorIssue),
		)
		return nil, false, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceObservation)
	}

	observation := new(fhir_dto.Observation)
	err = json.Unmarshal(body, observation)
	if err != nil {
		return nil, false, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
	}
	return observation, true, nil
}

func (c *observationFhirClient) SearchObservations(ctx context.Context, params url.Values) ([]fhir_dto.Observation, error) {
	requestID := utils.RequestIDFromContext(ctx)

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.SearchUrl(constvars.ResourceObservation, params), nil)
	if err != nil {
		return nil, err
	}
	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("observationFhirClient.SearchObservations FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, params.Encode()),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceObservation)
	}

	resources := fhir_spark.EntryResources(body, constvars.ResourceObservation)
	observations := make([]fhir_dto.Observation, 0, len(resources))
	for _, raw := range resources {
		var observation fhir_dto.Observation
		if err := json.Unmarshal(raw, &observation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
		}
		observations = append(observations, observation)
	}
	return observations, nil
}
