package constvars

const (
	URLParamResourceID    = "resourceID"
	URLParamIdentifier    = "identifier"
	URLParamMaritalCode   = "code"
	URLParamPatientID     = "patientID"
	URLParamObservationID = "observationID"
	URLParamKind          = "kind"
	URLParamJobID         = "jobID"
	URLParamCode          = "code"
)

const (
	URLQueryParamPageSize = "pageSize"
	URLQueryParamGiven    = "given"
	URLQueryParamFamily   = "family"
	URLQueryParamKind     = "kind"
)
