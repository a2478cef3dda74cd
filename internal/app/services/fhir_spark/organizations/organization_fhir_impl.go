package organizations

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
	organizationFhirClientInstance contracts.OrganizationFhirClient
	onceOrganizationFhirClient     sync.Once
)

type organizationFhirClient struct {
	Client *fhir_spark.Client
	Log    *zap.Logger
}

func NewOrganizationFhirClient(client *fhir_spark.Client, logger *zap.Logger) contracts.OrganizationFhirClient {
	onceOrganizationFhirClient.Do(func() {
		organizationFhirClientInstance = &organizationFhirClient{
			Client: client,
			Log:    logger,
		}
	})
	return organizationFhirClientInstance
}

func (c *organizationFhirClient) CreateOrganization(ctx context.Context, request *fhir_dto.Organization) (*fhir_dto.Organization, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("organizationFhirClient.CreateOrganization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("organizationFhirClient.CreateOrganization error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	status, body, err := c.Client.Execute(ctx, constvars.MethodPost, c.Client.ResourceUrl(constvars.ResourceOrganization), requestJSON)
	if err != nil {
		c.Log.Error("organizationFhirClient.CreateOrganization error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if status != constvars.StatusCreated && status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("organizationFhirClient.CreateOrganization FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourceOrganization)
	}

	organization := new(fhir_dto.Organization)
	err = json.Unmarshal(body, organization)
	if err != nil {
		c.Log.Error("organizationFhirClient.CreateOrganization error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrganization)
	}

	c.Log.Info("organizationFhirClient.CreateOrganization succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationIDKey, organization.ID),
	)
	return organization, nil
}

func (c *organizationFhirClient) FindOrganizationByIdentifier(ctx context.Context, system, value string) (*fhir_dto.Organization, bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("organizationFhirClient.FindOrganizationByIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamIdentifier, fmt.Sprintf("%s|%s", system, value))

	status, body, err := c.Client.Execute(ctx, constvars.MethodGet, c.Client.SearchUrl(constvars.ResourceOrganization, params), nil)
	if err != nil {
		c.Log.Error("organizationFhirClient.FindOrganizationByIdentifier error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false, err
	}

	if status != constvars.StatusOK {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.Log.Error("organizationFhirClient.FindOrganizationByIdentifier FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, false, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceOrganization)
	}

	resources := fhir_spark.EntryResources(body, constvars.ResourceOrganization)
	if len(resources) == 0 {
		return nil, false, nil
	}

	organization := new(fhir_dto.Organization)
	err = json.Unmarshal(resources[0], organization)
	if err != nil {
		return nil, false, exceptions.ErrDecodeResponse(err, constvars.ResourceOrganization)
	}

	c.Log.Info("organizationFhirClient.FindOrganizationByIdentifier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationIDKey, organization.ID),
	)
	return organization, true, nil
}
