package organization

import (
	"context"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/mappers"
	"patient-sync-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Usecase implements contracts.OrganizationUsecase.
type Usecase struct {
	organizationClient contracts.OrganizationFhirClient
	log                *zap.Logger
}

// NewOrganizationUsecase constructs a new Organization usecase.
func NewOrganizationUsecase(organizationClient contracts.OrganizationFhirClient, log *zap.Logger) contracts.OrganizationUsecase {
	return &Usecase{
		organizationClient: organizationClient,
		log:                log,
	}
}

func (uc *Usecase) AddOrganization(ctx context.Context, request *requests.OrganizationRequest) (*responses.Organization, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrFieldsValidation(exceptions.FieldErrorsFromValidation(err, ""))
	}

	created, err := uc.organizationClient.CreateOrganization(ctx, mappers.BuildFhirOrganization(request))
	if err != nil {
		uc.log.With(zap.Error(err)).Error("failed to create organization",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, err
	}

	uc.log.Info("organization created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationIDKey, created.ID),
	)
	response := mappers.BuildOrganizationResponse(created)
	return &response, nil
}

func (uc *Usecase) FindOrganizationByIdentifier(ctx context.Context, identifier string) (*responses.Organization, error) {
	organization, found, err := uc.organizationClient.FindOrganizationByIdentifier(ctx, constvars.OrganizationIdentifierSystem, identifier)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrOrganizationNotFound(nil, identifier)
	}

	response := mappers.BuildOrganizationResponse(organization)
	return &response, nil
}
