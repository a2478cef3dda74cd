package medications

import (
	"context"
	"net/url"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/mappers"
	"patient-sync-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const medicationReadConcurrency = 4

type medicationUsecase struct {
	MedicationFhirClient contracts.MedicationFhirClient
	Log                  *zap.Logger
}

func NewMedicationUsecase(medicationFhirClient contracts.MedicationFhirClient, logger *zap.Logger) contracts.MedicationUsecase {
	return &medicationUsecase{
		MedicationFhirClient: medicationFhirClient,
		Log:                  logger,
	}
}

// GetMedicationsForPatient resolves every Medication referenced by the patient's
// MedicationRequests. Dangling references are dropped.
func (uc *medicationUsecase) GetMedicationsForPatient(ctx context.Context, patientID string) ([]responses.Medication, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("medicationUsecase.GetMedicationsForPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamSubject, mappers.PatientReference(patientID).Reference)

	medicationRequests, err := uc.MedicationFhirClient.SearchMedicationRequests(ctx, params)
	if err != nil {
		return nil, err
	}

	medicationIDs := make([]string, 0, len(medicationRequests))
	for _, medicationRequest := range medicationRequests {
		if medicationRequest.MedicationReference == nil {
			continue
		}
		id := strings.TrimPrefix(medicationRequest.MedicationReference.Reference, constvars.ResourceMedication+"/")
		if id != "" {
			medicationIDs = append(medicationIDs, id)
		}
	}

	found := make([]*fhir_dto.Medication, len(medicationIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(medicationReadConcurrency)
	for i, id := range medicationIDs {
		g.Go(func() error {
			medication, ok, err := uc.MedicationFhirClient.FindMedicationByID(gctx, id)
			if err != nil {
				return err
			}
			if ok {
				found[i] = medication
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.Log.Error("medicationUsecase.GetMedicationsForPatient error reading medications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	medications := make([]fhir_dto.Medication, 0, len(found))
	for _, medication := range found {
		if medication != nil {
			medications = append(medications, *medication)
		}
	}

	uc.Log.Info("medicationUsecase.GetMedicationsForPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMedicationCountKey, len(medications)),
	)
	return mappers.BuildMedicationResponses(medications), nil
}
