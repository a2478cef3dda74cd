package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_SUBJECT_KEY         ContextKey = "auth_subject"
)

const (
	REQUEST_ID_PREFIX = "PSS_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ImportLockKeyPrefix       = "patient-import:"
	ImportArchiveObjectPrefix = "imports/"
	ImportMultipartFileField  = "file"

	ImportQuotaDailyKeyPrefix  = "IMPORT:QUOTA:"
	ImportQuotaMinuteKeyPrefix = "IMPORT:LIMIT:"
)

const (
	ImportJobStatusRunning   = "running"
	ImportJobStatusSucceeded = "succeeded"
	ImportJobStatusFailed    = "failed"
	ImportJobStatusRejected  = "rejected"
)

const (
	ImportEventTypeCompleted = "patient_import.completed"
	ImportEventTypeFailed    = "patient_import.failed"
)

const CitizenshipCsvDelimiter = ';'

const DateFormatDayMonthYear = "02/01/2006"
const DateFormatISO = "2006-01-02"
