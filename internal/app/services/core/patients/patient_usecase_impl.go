package patients

import (
	"context"
	"net/url"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/mappers"
	"patient-sync-service/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientFhirClient  contracts.PatientFhirClient
	CitizenshipService contracts.CitizenshipService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewPatientUsecase(
	patientFhirClient contracts.PatientFhirClient,
	citizenshipService contracts.CitizenshipService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientFhirClient:  patientFhirClient,
		CitizenshipService: citizenshipService,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.PatientRequest) (*responses.PatientDetail, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fieldErrors := utils.ValidatePatientRequest(request)
	if strings.TrimSpace(request.Identifier) == "" {
		fieldErrors = append(fieldErrors, exceptions.FieldError{Field: "Identifier", Message: "identifier is required"})
	}
	if len(fieldErrors) > 0 {
		uc.Log.Error("patientUsecase.CreatePatient validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingViolationCountKey, len(fieldErrors)),
		)
		return nil, exceptions.ErrFieldsValidation(fieldErrors)
	}

	patient := mappers.BuildFhirPatientFromRequest(request, uc.InternalConfig.FHIR.ManagingOrganization)
	mappers.AttachPatientExtensions(patient, request, uc.CitizenshipService.Lookup())

	created, err := uc.PatientFhirClient.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error calling PatientFhirClient.CreatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	detail := mappers.BuildPatientDetail(created)
	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, created.ID),
	)
	return &detail, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.PatientRequest) (*responses.PatientDetail, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fieldErrors := utils.ValidatePatientRequest(request)
	if len(fieldErrors) > 0 {
		return nil, exceptions.ErrFieldsValidation(fieldErrors)
	}

	patient, found, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, constvars.PatientIdentifierSystem, request.Identifier)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error calling PatientFhirClient.FindPatientByIdentifier",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, request.Identifier)
	}

	mappers.ApplyPatientRequest(patient, request, uc.CitizenshipService.Lookup())

	updated, err := uc.PatientFhirClient.UpdatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error calling PatientFhirClient.UpdatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	detail := mappers.BuildPatientDetail(updated)
	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, updated.ID),
	)
	return &detail, nil
}

// DeletePatientByIdentifier reports false when no patient carries the identifier.
func (uc *patientUsecase) DeletePatientByIdentifier(ctx context.Context, identifier string) (bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.DeletePatientByIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIdentifierKey, identifier),
	)

	patient, found, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, constvars.PatientIdentifierSystem, identifier)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	err = uc.PatientFhirClient.DeletePatientByID(ctx, patient.ID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeletePatientByIdentifier error calling PatientFhirClient.DeletePatientByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}
	return true, nil
}

func (uc *patientUsecase) FindPatientByIdentifier(ctx context.Context, identifier string) (*responses.PatientDetail, error) {
	patient, found, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, constvars.PatientIdentifierSystem, identifier)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, identifier)
	}

	detail := mappers.BuildPatientDetail(patient)
	return &detail, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, resourceID string) (*responses.PatientDetail, error) {
	patient, found, err := uc.PatientFhirClient.FindPatientByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, resourceID)
	}

	detail := mappers.BuildPatientDetail(patient)
	return &detail, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, pageSize int) ([]responses.PatientDetail, error) {
	if pageSize <= 0 {
		pageSize = constvars.DefaultPatientPageSize
	}

	params := url.Values{}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(pageSize))

	patients, err := uc.PatientFhirClient.SearchPatients(ctx, params)
	if err != nil {
		return nil, err
	}
	return mappers.BuildPatientDetails(patients), nil
}

// FindPatientsByName searches on whichever of given and family is non-empty.
func (uc *patientUsecase) FindPatientsByName(ctx context.Context, given, family string) ([]responses.PatientDetail, error) {
	params := url.Values{}
	if given != "" {
		params.Set(constvars.FhirSearchParamGiven, given)
	}
	if family != "" {
		params.Set(constvars.FhirSearchParamFamily, family)
	}
	if len(params) == 0 {
		return nil, exceptions.ErrFieldsValidation([]exceptions.FieldError{
			{Field: "given", Message: "given or family is required"},
		})
	}

	patients, err := uc.PatientFhirClient.SearchPatients(ctx, params)
	if err != nil {
		return nil, err
	}
	return mappers.BuildPatientDetails(patients), nil
}

func (uc *patientUsecase) UpdatePatientMaritalStatus(ctx context.Context, resourceID, code string) (*responses.PatientDetail, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.UpdatePatientMaritalStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, resourceID),
	)

	patient, found, err := uc.PatientFhirClient.FindPatientByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, resourceID)
	}

	patient.MaritalStatus = mappers.BuildMaritalStatusConcept(code)

	updated, err := uc.PatientFhirClient.UpdatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatientMaritalStatus error calling PatientFhirClient.UpdatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	detail := mappers.BuildPatientDetail(updated)
	return &detail, nil
}
