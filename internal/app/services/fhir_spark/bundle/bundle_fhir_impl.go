package bundle

import (
	"context"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/services/fhir_spark"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bundleFhirClient struct {
	client *fhir_spark.Client
	log    *zap.Logger
}

// NewBundleFhirClient posts to the registry base url, where transaction bundles are accepted.
func NewBundleFhirClient(client *fhir_spark.Client, logger *zap.Logger) contracts.BundleFhirClient {
	return &bundleFhirClient{client: client, log: logger}
}

func (c *bundleFhirClient) PostTransactionBundle(ctx context.Context, bundle *fhir_dto.FHIRBundle) (*fhir_dto.FHIRBundle, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.log.Info("bundleFhirClient.PostTransactionBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBundleEntryCountKey, len(bundle.Entry)),
	)

	requestJSON, err := json.Marshal(bundle)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	status, body, err := c.client.Execute(ctx, constvars.MethodPost, c.client.BaseUrl(), requestJSON)
	if err != nil {
		c.log.Error("bundleFhirClient.PostTransactionBundle error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if status != constvars.StatusOK && status != constvars.StatusCreated {
		fhirErrorIssue := fhir_spark.OutcomeError(status, body)
		c.log.Error("bundleFhirClient.PostTransactionBundle FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrSubmitTransactionBundle(fhirErrorIssue)
	}

	var result fhir_dto.FHIRBundle
	if err := json.Unmarshal(body, &result); err != nil {
		c.log.Error("bundleFhirClient.PostTransactionBundle error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
	}

	c.log.Info("bundleFhirClient.PostTransactionBundle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBundleEntryCountKey, len(result.Entry)),
	)
	return &result, nil
}
