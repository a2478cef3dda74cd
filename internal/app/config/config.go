package config

import (
	"patient-sync-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Enabled:  utils.GetEnvBool("MONGODB_ENABLED", false),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "patient_sync"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		FHIR: AppFHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", "http://localhost:5555/fhir/"),
			ManagingOrganization:    utils.GetEnvString("FHIR_MANAGING_ORGANIZATION", ""),
			BearerToken:             utils.GetEnvString("FHIR_BEARER_TOKEN", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("FHIR_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Resources: AppResources{
			CitizenshipCsvFilename:    utils.GetEnvString("CITIZENSHIP_CSV_FILENAME", "resources/citizenships.csv"),
			CitizenshipReloadCronSpec: utils.GetEnvString("CITIZENSHIP_RELOAD_CRON_SPEC", "@daily"),
		},
		Import: AppImport{
			CsvDelimiter:           utils.GetEnvString("IMPORT_CSV_DELIMITER", ";"),
			LookupConcurrency:      utils.GetEnvInt("IMPORT_LOOKUP_CONCURRENCY", 1),
			LookupRatePerSecond:    utils.GetEnvFloat("IMPORT_LOOKUP_RATE_PER_SECOND", 0),
			LookupTimeoutInSeconds: utils.GetEnvInt("IMPORT_LOOKUP_TIMEOUT_IN_SECONDS", 10),
			FailFast:               utils.GetEnvBool("IMPORT_FAIL_FAST", true),
			LockTTLInSeconds:       utils.GetEnvInt("IMPORT_LOCK_TTL_IN_SECONDS", 600),
			TimeoutInSeconds:       utils.GetEnvInt("IMPORT_TIMEOUT_IN_SECONDS", 300),
			ArchiveBucketName:      utils.GetEnvString("IMPORT_ARCHIVE_BUCKET", "patient-imports"),
			EventsQueueName:        utils.GetEnvString("IMPORT_EVENTS_QUEUE", "patient_import_events"),
			JobsCollectionName:     utils.GetEnvString("IMPORT_JOBS_COLLECTION", "import_jobs"),
			QuotaPerMinute:         utils.GetEnvInt("IMPORT_QUOTA_PER_MINUTE", 0),
			QuotaPerDay:            utils.GetEnvInt("IMPORT_QUOTA_PER_DAY", 0),
		},
		Auth: AppAuth{
			APIKeyHash:        utils.GetEnvString("AUTH_API_KEY_HASH", ""),
			JWTSecret:         utils.GetEnvString("AUTH_JWT_SECRET", ""),
			TokenTTLInMinutes: utils.GetEnvInt("AUTH_TOKEN_TTL_IN_MINUTES", 60),
		},
	}
}
