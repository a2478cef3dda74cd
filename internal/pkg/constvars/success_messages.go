package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
)

const (
	CreatePatientSuccessMessage              = "patient created successfully"
	UpdatePatientSuccessMessage              = "patient updated successfully"
	DeletePatientSuccessMessage              = "patient deleted successfully"
	GetPatientSuccessMessage                 = "patient retrieved successfully"
	GetPatientsSuccessMessage                = "patients retrieved successfully"
	UpdatePatientMaritalStatusSuccessMessage = "patient marital status updated successfully"
	UploadPatientsSuccessMessage             = "patients synchronized successfully"

	CreateObservationSuccessMessage = "observation created successfully"
	GetObservationSuccessMessage    = "observation retrieved successfully"
	GetObservationsSuccessMessage   = "observations retrieved successfully"

	CreateOrganizationSuccessMessage = "organization created successfully"
	GetOrganizationSuccessMessage    = "organization retrieved successfully"

	GetMedicationsSuccessMessage = "medications retrieved successfully"

	GetImportJobSuccessMessage       = "import job retrieved successfully"
	ReloadCitizenshipsSuccessMessage = "citizenship table reloaded successfully"
	GetCitizenshipSuccessMessage     = "citizenship retrieved successfully"
)
