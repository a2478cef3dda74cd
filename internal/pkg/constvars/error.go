package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"not_placeholder": "must not be the placeholder value \"string\"",
	"numeric":         "must be a number",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"max":             "maximum at %s characters long",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientObservationNotFound           = "observation not found"
	ErrClientOrganizationNotFound          = "organization not found"
	ErrClientImportJobNotFound             = "import job not found"
	ErrClientCitizenshipNotFound           = "citizenship not found"
	ErrClientCsvInvalid                    = "uploaded file contains invalid records"
	ErrClientImportInProgress              = "the same import is already being processed"
	ErrClientUnknownObservationKind        = "unknown observation kind"
	ErrClientRegistryUnavailable           = "the patient registry is not reachable"
	ErrClientImportQuotaExceeded           = "import quota exceeded, try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseCsv           = "cannot parse CSV"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCannotParseDate          = "cannot parse date"
	ErrDevURLParamValidationFailed = "url param %s validation failed"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevAuthTokenMissing         = "auth token missing"
	ErrDevAuthTokenInvalid         = "auth token invalid or expired"
	ErrDevInvalidAPIKey            = "invalid api key"

	ErrDevSparkCreateFHIRResource         = "failed to create FHIR %s on the registry"
	ErrDevSparkGetFHIRResource            = "failed to get FHIR %s from the registry"
	ErrDevSparkUpdateFHIRResource         = "failed to update FHIR %s on the registry"
	ErrDevSparkDeleteFHIRResource         = "failed to delete FHIR %s on the registry"
	ErrDevSparkDecodeFHIRResourceResponse = "failed to decode FHIR %s response from the registry"
	ErrDevSparkFHIRResourceNotFound       = "FHIR %s not found on the registry"
	ErrDevSparkSubmitTransactionBundle    = "failed to submit transaction bundle to the registry"

	ErrDevCitizenshipTableLoad    = "failed to load citizenship table from %s"
	ErrDevCitizenshipTableMissing = "citizenship table is not initialized"
	ErrDevImportLockAcquire       = "failed to acquire import lock %s"
	ErrDevImportInProgress        = "import lock %s already held"
	ErrDevUnknownObservationKind  = "unknown observation kind %s"
	ErrDevImportQuotaExceeded     = "import quota exceeded for %s"

	ErrDevRedisSetData    = "failed to set data on redis"
	ErrDevRedisGetData    = "failed to get data from redis key %s"
	ErrDevRedisDeleteData = "failed to delete data on redis"
	ErrDevRedisIncrement  = "failed to increment redis counter %s"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"

	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevDBFailedToUpdateDocument = "failed to update document"
	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBDocumentNotFound       = "document not found"
)
