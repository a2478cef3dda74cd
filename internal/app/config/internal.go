package config

type InternalConfig struct {
	App       App
	FHIR      AppFHIR
	Resources AppResources
	Import    AppImport
	Auth      AppAuth
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type AppFHIR struct {
	BaseUrl                 string
	ManagingOrganization    string
	BearerToken             string
	RequestTimeoutInSeconds int
}

type AppResources struct {
	CitizenshipCsvFilename    string
	CitizenshipReloadCronSpec string
}

type AppImport struct {
	CsvDelimiter           string
	LookupConcurrency      int
	LookupRatePerSecond    float64
	LookupTimeoutInSeconds int
	FailFast               bool
	LockTTLInSeconds       int
	TimeoutInSeconds       int
	ArchiveBucketName      string
	EventsQueueName        string
	JobsCollectionName     string
	// Quotas are per caller. Zero disables the window.
	QuotaPerMinute int
	QuotaPerDay    int
}

type AppAuth struct {
	// APIKeyHash is the bcrypt hash of the accepted x-api-key value. Empty disables API key auth.
	APIKeyHash string
	// JWTSecret verifies HS256 bearer tokens. Empty disables bearer auth.
	JWTSecret         string
	TokenTTLInMinutes int
}
