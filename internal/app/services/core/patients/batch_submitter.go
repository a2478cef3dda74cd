package patients

import (
	"context"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BatchSubmitter sends each batch as one transaction bundle. A failed call fails the
// whole batch; nothing is retried entry by entry.
type BatchSubmitter struct {
	BundleFhirClient contracts.BundleFhirClient
	Log              *zap.Logger
}

func NewBatchSubmitter(bundleFhirClient contracts.BundleFhirClient, logger *zap.Logger) *BatchSubmitter {
	return &BatchSubmitter{BundleFhirClient: bundleFhirClient, Log: logger}
}

func (s *BatchSubmitter) SubmitCreates(ctx context.Context, patients []*fhir_dto.Patient) (*responses.BatchResult, error) {
	return s.submit(ctx, patients, constvars.MethodPost)
}

// SubmitUpdates expects every patient to carry the registry id it replaces.
func (s *BatchSubmitter) SubmitUpdates(ctx context.Context, patients []*fhir_dto.Patient) (*responses.BatchResult, error) {
	return s.submit(ctx, patients, constvars.MethodPut)
}

func (s *BatchSubmitter) submit(ctx context.Context, patients []*fhir_dto.Patient, method string) (*responses.BatchResult, error) {
	bundle, err := buildTransactionBundle(patients, method)
	if err != nil {
		return nil, err
	}
	if len(bundle.Entry) == 0 {
		return &responses.BatchResult{}, nil
	}

	response, err := s.BundleFhirClient.PostTransactionBundle(ctx, bundle)
	if err != nil {
		return nil, err
	}

	result := &responses.BatchResult{
		Count:   len(response.Entry),
		Entries: make([]responses.BundleEntryOutcome, 0, len(response.Entry)),
	}
	for _, entry := range response.Entry {
		if entry.Response == nil {
			result.Entries = append(result.Entries, responses.BundleEntryOutcome{})
			continue
		}
		result.Entries = append(result.Entries, responses.BundleEntryOutcome{
			Status:   entry.Response.Status,
			Location: entry.Response.Location,
		})
	}
	return result, nil
}

func buildTransactionBundle(patients []*fhir_dto.Patient, method string) (*fhir_dto.FHIRBundle, error) {
	bundle := &fhir_dto.FHIRBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeTransaction,
	}

	for _, patient := range patients {
		if patient == nil || strings.TrimSpace(patient.IdentifierValue(constvars.PatientIdentifierSystem)) == "" {
			continue
		}

		resource, err := json.Marshal(patient)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}

		requestUrl := constvars.ResourcePatient
		if method == constvars.MethodPut {
			requestUrl = constvars.ResourcePatient + "/" + patient.ID
		}

		bundle.Entry = append(bundle.Entry, fhir_dto.Entry{
			Resource: resource,
			Request: &fhir_dto.EntryRequest{
				Method: method,
				Url:    requestUrl,
			},
		})
	}
	return bundle, nil
}
