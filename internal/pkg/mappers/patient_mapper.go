package mappers

import (
	"fmt"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"
	"strings"
)

// NormalizeGender maps free text onto the administrative gender codes.
func NormalizeGender(value string) string {
	switch strings.ToUpper(value) {
	case "MALE":
		return constvars.FhirGenderMale
	case "FEMALE":
		return constvars.FhirGenderFemale
	default:
		return constvars.FhirGenderUnknown
	}
}

// NormalizeAddressType maps free text onto the address type codes, defaulting to postal.
func NormalizeAddressType(value string) string {
	switch strings.ToUpper(value) {
	case "BOTH":
		return constvars.FhirAddressTypeBoth
	case "PHYSICAL":
		return constvars.FhirAddressTypePhysical
	default:
		return constvars.FhirAddressTypePostal
	}
}

// ComposeAddressLine joins the street parts with single spaces and keeps empty parts.
func ComposeAddressLine(streetName, streetNo, appartmentNo string) string {
	return fmt.Sprintf("%s %s %s", streetName, streetNo, appartmentNo)
}

// BuildCitizenship returns nil when code does not resolve in the lookup.
func BuildCitizenship(code string, citizenships CitizenshipLookup) *fhir_dto.Citizenship {
	if citizenships == nil {
		return nil
	}
	entry, ok := citizenships.Get(code)
	if !ok {
		return nil
	}
	start, err := utils.ConvertDayMonthYearToISO(entry.From)
	if err != nil {
		start = ""
	}
	return &fhir_dto.Citizenship{
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.CitizenshipCodingSystem,
				Code:    entry.Code,
				Display: entry.Explanation,
			}},
		},
		Period: fhir_dto.Period{Start: start},
	}
}

func buildOfficialName(prefix, firstName, lastName string) []fhir_dto.HumanName {
	return []fhir_dto.HumanName{{
		Use:    constvars.FhirNameUseOfficial,
		Prefix: []string{prefix},
		Given:  []string{firstName},
		Family: lastName,
	}}
}

func buildPatientIdentifier(value string) []fhir_dto.Identifier {
	return []fhir_dto.Identifier{{
		System: constvars.PatientIdentifierSystem,
		Value:  value,
	}}
}

func buildManagingOrganization(reference string) *fhir_dto.Reference {
	if reference == "" {
		return nil
	}
	return &fhir_dto.Reference{Reference: reference}
}

// BuildFhirPatientFromCsv maps a flat record onto a fresh canonical patient.
func BuildFhirPatientFromCsv(record requests.PatientCsv, citizenships CitizenshipLookup, managingOrganization string) *fhir_dto.Patient {
	return &fhir_dto.Patient{
		ResourceType:         constvars.ResourcePatient,
		ID:                   utils.NewFhirResourceID(),
		Active:               true,
		Identifier:           buildPatientIdentifier(record.Identifier),
		ManagingOrganization: buildManagingOrganization(managingOrganization),
		Gender:               NormalizeGender(record.Gender),
		Name:                 buildOfficialName(record.Prefix, record.FirstName, record.LastName),
		BirthDate:            record.BirthDate,
		Address: []fhir_dto.Address{{
			City:       record.AddressCity,
			Country:    record.AddressCountry,
			PostalCode: record.AddressPostalCode,
			Line:       []string{ComposeAddressLine(record.AddressStreetName, record.AddressStreetNo, record.AddressAppartmentNo)},
			Type:       NormalizeAddressType(record.AddressType),
		}},
		BirthPlace:  &fhir_dto.Address{City: record.BirthPlace},
		Citizenship: BuildCitizenship(record.CitizenshipCode, citizenships),
	}
}

func BuildFhirPatientsFromCsv(records []requests.PatientCsv, citizenships CitizenshipLookup, managingOrganization string) []*fhir_dto.Patient {
	patients := make([]*fhir_dto.Patient, 0, len(records))
	for _, record := range records {
		patients = append(patients, BuildFhirPatientFromCsv(record, citizenships, managingOrganization))
	}
	return patients
}

// BuildFhirPatientFromRequest maps the identifying, demographic and address
// fields of a request. Extensions are left to the update path.
func BuildFhirPatientFromRequest(request *requests.PatientRequest, managingOrganization string) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType:         constvars.ResourcePatient,
		ID:                   utils.NewFhirResourceID(),
		Active:               true,
		Identifier:           buildPatientIdentifier(request.Identifier),
		ManagingOrganization: buildManagingOrganization(managingOrganization),
	}
	applyDemographics(patient, request)
	return patient
}

// AttachPatientExtensions sets birth place when supplied and citizenship when
// the code resolves. Used on create, where no extension exists yet.
func AttachPatientExtensions(patient *fhir_dto.Patient, request *requests.PatientRequest, citizenships CitizenshipLookup) {
	if request.BirthPlace != "" {
		patient.BirthPlace = &fhir_dto.Address{City: request.BirthPlace}
	}
	patient.Citizenship = BuildCitizenship(request.CitizenshipCode, citizenships)
}

// ApplyPatientRequest overwrites the demographic fields of an existing patient.
// Birth place is only touched when the patient already carries one; citizenship
// only when the requested code resolves.
func ApplyPatientRequest(patient *fhir_dto.Patient, request *requests.PatientRequest, citizenships CitizenshipLookup) {
	applyDemographics(patient, request)

	if patient.BirthPlace != nil {
		patient.BirthPlace.City = request.BirthPlace
	}

	citizenship := BuildCitizenship(request.CitizenshipCode, citizenships)
	if citizenship == nil {
		return
	}
	if patient.Citizenship == nil || len(patient.Citizenship.Code.Coding) == 0 {
		patient.Citizenship = citizenship
		return
	}
	coding := &patient.Citizenship.Code.Coding[0]
	coding.Code = citizenship.Code.Coding[0].Code
	coding.Display = citizenship.Code.Coding[0].Display
}

func applyDemographics(patient *fhir_dto.Patient, request *requests.PatientRequest) {
	patient.Gender = NormalizeGender(request.Gender)
	patient.Name = buildOfficialName(request.Prefix, request.FirstName, request.LastName)
	patient.BirthDate = request.BirthDate

	address := request.Address
	if address == nil {
		address = &requests.AddressRequest{}
	}
	patient.Address = []fhir_dto.Address{{
		City:       address.City,
		Country:    address.Country,
		PostalCode: address.PostalCode,
		Line:       []string{ComposeAddressLine(address.StreetName, address.StreetNo, address.AppartmentNo)},
		Type:       NormalizeAddressType(address.Type),
	}}
}

func genderDisplay(gender string) string {
	switch gender {
	case constvars.FhirGenderMale:
		return "Male"
	case constvars.FhirGenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

func addressTypeDisplay(addressType string) string {
	switch addressType {
	case constvars.FhirAddressTypeBoth:
		return "Both"
	case constvars.FhirAddressTypePhysical:
		return "Physical"
	default:
		return "Postal"
	}
}

func BuildPatientDetail(patient *fhir_dto.Patient) responses.PatientDetail {
	detail := responses.PatientDetail{
		ID:        patient.ID,
		BirthDate: patient.BirthDate,
		Gender:    genderDisplay(patient.Gender),
		Address:   &responses.AddressDetail{},
	}
	if len(patient.Identifier) > 0 {
		detail.Identifier = patient.Identifier[0].Value
	}
	if len(patient.Name) > 0 {
		name := patient.Name[0]
		if len(name.Prefix) > 0 {
			detail.Prefix = name.Prefix[0]
		}
		if len(name.Given) > 0 {
			detail.FirstName = name.Given[0]
		}
		detail.LastName = name.Family
	}
	if patient.BirthPlace != nil {
		detail.BirthPlace = patient.BirthPlace.City
	}
	if patient.Citizenship != nil && len(patient.Citizenship.Code.Coding) > 0 {
		detail.Citizenship = patient.Citizenship.Code.Coding[0].Display
		detail.CitizenshipCode = patient.Citizenship.Code.Coding[0].Code
	}
	if patient.MaritalStatus != nil && len(patient.MaritalStatus.Coding) > 0 {
		coding := patient.MaritalStatus.Coding[0]
		detail.MaritalStatus = &responses.MaritalStatus{System: coding.System, Code: coding.Code, Display: coding.Display}
	}
	if len(patient.Address) > 0 {
		address := patient.Address[0]
		detail.Address = &responses.AddressDetail{
			PostalCode: address.PostalCode,
			City:       address.City,
			Country:    address.Country,
			Type:       addressTypeDisplay(address.Type),
			Line:       address.Line,
		}
	}
	return detail
}

func BuildPatientDetails(patients []fhir_dto.Patient) []responses.PatientDetail {
	details := make([]responses.PatientDetail, 0, len(patients))
	for i := range patients {
		details = append(details, BuildPatientDetail(&patients[i]))
	}
	return details
}
