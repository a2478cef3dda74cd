package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingResponseLengthKey = "response_length"

	LoggingPatientIDKey         = "patient_id"
	LoggingPatientIdentifierKey = "patient_identifier"
	LoggingPatientCountKey      = "patient_count"
	LoggingObservationIDKey     = "observation_id"
	LoggingOrganizationIDKey    = "organization_id"
	LoggingMedicationCountKey   = "medication_count"
	LoggingBundleEntryCountKey  = "bundle_entry_count"
	LoggingCitizenshipCountKey  = "citizenship_count"
	LoggingCitizenshipCodeKey   = "citizenship_code"

	LoggingImportJobIDKey    = "import_job_id"
	LoggingFileNameKey       = "file_name"
	LoggingExistingCountKey  = "existing_count"
	LoggingNewCountKey       = "new_count"
	LoggingSkippedCountKey   = "skipped_count"
	LoggingViolationCountKey = "violation_count"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"

	LoggingBucketNameKey = "bucket_name"
	LoggingObjectNameKey = "object_name"
	LoggingQueueNameKey  = "queue_name"
	LoggingCronSpecKey   = "cron_spec"
)
