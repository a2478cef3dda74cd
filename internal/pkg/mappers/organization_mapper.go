package mappers

import (
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"
)

func BuildFhirOrganization(request *requests.OrganizationRequest) *fhir_dto.Organization {
	organization := &fhir_dto.Organization{
		ResourceType: constvars.ResourceOrganization,
		ID:           utils.NewFhirResourceID(),
		Active:       true,
		Name:         request.Name,
		Identifier: []fhir_dto.Identifier{{
			System: constvars.OrganizationIdentifierSystem,
			Value:  request.Identifier,
		}},
	}
	if request.Phone != "" {
		organization.Telecom = []fhir_dto.ContactPoint{{
			System: constvars.FhirTelecomSystemPhone,
			Value:  request.Phone,
		}}
	}
	return organization
}

func BuildOrganizationResponse(organization *fhir_dto.Organization) responses.Organization {
	response := responses.Organization{
		ID:     organization.ID,
		Name:   organization.Name,
		Active: organization.Active,
	}
	if len(organization.Identifier) > 0 {
		response.Identifier = organization.Identifier[0].Value
	}
	for _, telecom := range organization.Telecom {
		if telecom.System == constvars.FhirTelecomSystemPhone {
			response.Phone = telecom.Value
			break
		}
	}
	return response
}

func BuildOrganizationResponses(organizations []fhir_dto.Organization) []responses.Organization {
	result := make([]responses.Organization, 0, len(organizations))
	for i := range organizations {
		result = append(result, BuildOrganizationResponse(&organizations[i]))
	}
	return result
}
