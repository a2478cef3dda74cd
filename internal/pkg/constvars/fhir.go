package constvars

const (
	ResourcePatient           = "Patient"
	ResourceObservation       = "Observation"
	ResourceOrganization      = "Organization"
	ResourceMedication        = "Medication"
	ResourceMedicationRequest = "MedicationRequest"
	ResourceBundle            = "Bundle"
	ResourceOperationOutcome  = "OperationOutcome"
)

const (
	FhirBundleTypeTransaction         = "transaction"
	FhirBundleTypeTransactionResponse = "transaction-response"
	FhirBundleTypeSearchSet           = "searchset"
)

const (
	FhirNameUseOfficial        = "official"
	FhirTelecomSystemPhone     = "phone"
	FhirObservationStatusFinal = "final"
)

const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderUnknown = "unknown"
)

const (
	FhirAddressTypePostal   = "postal"
	FhirAddressTypePhysical = "physical"
	FhirAddressTypeBoth     = "both"
)

const (
	PatientIdentifierSystem      = "http://acme.org/patient-ids"
	OrganizationIdentifierSystem = "http://acme.org/organization-ids"
	ObservationSequenceNoSystem  = "http://acme.org/sequence-nos"
	ObservationDefaultSequenceNo = "1"

	BirthPlaceExtensionURL  = "http://hl7.org/fhir/StructureDefinition/patient-birthPlace"
	CitizenshipExtensionURL = "http://hl7.org/fhir/StructureDefinition/patient-citizenship"
	BirthPlaceURLSuffix     = "patient-birthPlace"
	CitizenshipURLSuffix    = "patient-citizenship"

	CitizenshipSubExtensionCode   = "code"
	CitizenshipSubExtensionPeriod = "period"
	CitizenshipCodingSystem       = "urn:iso:std:iso:3166"

	MaritalStatusCodingSystem = "http://hl7.org/fhir/R4/valueset-marital-status.html"

	ObservationCategorySystem  = "http://terminology.hl7.org/CodeSystem/observation-category"
	ObservationCategoryCode    = "laboratory"
	ObservationCategoryDisplay = "Laboratory"

	LoincCodingSystem = "http://loinc.org"
)

const (
	FhirSearchParamIdentifier = "identifier"
	FhirSearchParamGiven      = "given"
	FhirSearchParamFamily     = "family"
	FhirSearchParamCount      = "_count"
	FhirSearchParamSubject    = "subject"
	FhirSearchParamCode       = "code"
)

const DefaultPatientPageSize = 10
