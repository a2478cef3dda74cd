package contracts

import (
	"context"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
)

type OrganizationUsecase interface {
	AddOrganization(ctx context.Context, request *requests.OrganizationRequest) (*responses.Organization, error)
	FindOrganizationByIdentifier(ctx context.Context, identifier string) (*responses.Organization, error)
}

type OrganizationFhirClient interface {
	CreateOrganization(ctx context.Context, request *fhir_dto.Organization) (*fhir_dto.Organization, error)
	FindOrganizationByIdentifier(ctx context.Context, system, value string) (*fhir_dto.Organization, bool, error)
}
