package medications

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

type medicationFhirClient struct {
	Client *fhir_spark.Client
	Log    *zap.Logger
}

func NewMedicationFhirClient(client *fhir_spark.Client, logger *zap.Logger) contracts.MedicationFhirClient {
	return &medicationFhirClient{
		Client: client,
		Log:    logger,
	}
}

func (c *medicationFhirClient) FindMedicationByID(ctx context.Context, medicationID string) (*fhir_dto.Medication, bool, error) {
	requestID := utils.RequestIDFromContext(ctx)

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.ResourceUrl(constvars.ResourceMedication, medicationID), nil)
	if err != nil {
		return nil, false, err
	}
	if fhir_spark.IsNotFound(status) {
		return nil, false, nil
	}
	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("medicationFhirClient.FindMedicationByID FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, false, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceMedication)
	}

	medication := new(fhir_dto.Medication)
	if err := json.Unmarshal(body, medication); err != nil {
		return nil, false, exceptions.ErrDecodeResponse(err, constvars.ResourceMedication)
	}
	return medication, true, nil
}

// SearchMedicationRequests treats a 404 from the registry as an empty result.
func (c *medicationFhirClient) SearchMedicationRequests(ctx context.Context, params url.Values) ([]fhir_dto.MedicationRequest, error) {
	requestID := utils.RequestIDFromContext(ctx)

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.SearchUrl(constvars.ResourceMedicationRequest, params), nil)
	if err != nil {
		return nil, err
	}
	if fhir_spark.IsNotFound(status) {
		return []fhir_dto.MedicationRequest{}, nil
	}
	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("medicationFhirClient.SearchMedicationRequests FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceMedicationRequest)
	}

	resources := fhir_spark.EntryResources(body, constvars.ResourceMedicationRequest)
	medicationRequests := make([]fhir_dto.MedicationRequest, 0, len(resources))
	for _, raw := range resources {
		var medicationRequest fhir_dto.MedicationRequest
		if err := json.Unmarshal(raw, &medicationRequest); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationRequest)
		}
		medicationRequests = append(medicationRequests, medicationRequest)
	}
	return medicationRequests, nil
}
