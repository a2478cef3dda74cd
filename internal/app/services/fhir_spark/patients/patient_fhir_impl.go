package patients

import (
	"context"
	"fmt"
	"net/url"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/services/fhir_spark"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

type patientFhirClient struct {
	Client *fhir_spark.Client
	Log    *zap.Logger
}

func NewPatientFhirClient(client *fhir_spark.Client, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		patientFhirClientInstance = newPatientFhirClient(client, logger)
	})
	return patientFhirClientInstance
}

func newPatientFhirClient(client *fhir_spark.Client, logger *zap.Logger) *patientFhirClient {
	return &patientFhirClient{
		Client: client,
		Log:    logger,
	}
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.save(ctx, "patientFhirClient.CreatePatient", constvars.MethodPost,
		c.Client.ResourceUrl(constvars.ResourcePatient), request, exceptions.ErrCreateFHIRResource)
}

func (c *patientFhirClient) UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)

	return c.save(ctx, "patientFhirClient.UpdatePatient", constvars.MethodPut,
		c.Client.ResourceUrl(constvars.ResourcePatient, request.ID), request, exceptions.ErrUpdateFHIRResource)
}

func (c *patientFhirClient) save(ctx context.Context, method, httpMethod, target string, request *fhir_dto.Patient, errFn func(error, string) *exceptions.CustomError) (*fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error(method+" error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	status, body, err := c.Client.Execute(ctx, httpMethod, target, requestJSON)
	if err != nil {
		c.Log.Error(method+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if status != constvars.StatusOK && status != constvars.StatusCreated {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error(method+" FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(fhirErrorIssue),
		)
		return nil, errFn(fhirErrorIssue, constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.Unmarshal(body, patientFhir)
	if err != nil {
		c.Log.Error(method+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) DeletePatientByID(ctx context.Context, patientID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirClient.DeletePatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	status, body, err := c.Client.Execute(ctx, constvars.MethodDelete, c.Client.ResourceUrl(constvars.ResourcePatient, patientID), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.DeletePatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if status != constvars.StatusOK && status != constvars.StatusNoContent {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("patientFhirClient.DeletePatientByID FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(fhirErrorIssue),
		)
		return exceptions.ErrDeleteFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.DeletePatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.ResourceUrl(constvars.ResourcePatient, patientID), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false, err
	}

	if fhir_spark.IsNotFound(status) {
		c.Log.Info("patientFhirClient.FindPatientByID patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, false, nil
	}

	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("patientFhirClient.FindPatientByID FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(fhirErrorIssue),
		)
		return nil, false, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.Unmarshal(body, patientFhir)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, true, nil
}

// FindPatientByIdentifier returns the first match; the registry is expected to
// hold at most one patient per identifier.
func (c *patientFhirClient) FindPatientByIdentifier(ctx context.Context, system, value string) (*fhir_dto.Patient, bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirClient.FindPatientByIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIdentifierKey, value),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamIdentifier, fmt.Sprintf("%s|%s", system, value))

	patients, err := c.search(ctx, "patientFhirClient.FindPatientByIdentifier", params)
	if err != nil {
		return nil, false, err
	}
	if len(patients) == 0 {
		return nil, false, nil
	}

	c.Log.Info("patientFhirClient.FindPatientByIdentifier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patients[0].ID),
	)
	return &patients[0], true, nil
}

func (c *patientFhirClient) SearchPatients(ctx context.Context, params url.Values) ([]fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, params.Encode()),
	)

	patients, err := c.search(ctx, "patientFhirClient.SearchPatients", params)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientFhirClient.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientFhirClient) search(ctx context.Context, method string, params url.Values) ([]fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.SearchUrl(constvars.ResourcePatient, params), nil)
	if err != nil {
		c.Log.Error(method+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error(method+" FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	resources := fhir_spark.EntryResources(body, constvars.ResourcePatient)
	patients := make([]fhir_dto.Patient, 0, len(resources))
	for _, raw := range resources {
		var patient fhir_dto.Patient
		err = json.Unmarshal(raw, &patient)
		if err != nil {
			c.Log.Error(method+" error decoding entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		}
		patients = append(patients, patient)
	}
	return patients, nil
}
