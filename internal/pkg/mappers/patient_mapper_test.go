package mappers

import (
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticCitizenships map[string]models.CitizenshipEntry

func (s staticCitizenships) Get(code string) (models.CitizenshipEntry, bool) {
	entry, ok := s[code]
	return entry, ok
}

var usOnly = staticCitizenships{
	"US": {Code: "US", Explanation: "United States", From: "04/07/1776", Through: "31/12/9999"},
}

func janeDoe() requests.PatientCsv {
	return requests.PatientCsv{
		Nr:                "1",
		Identifier:        "PAT0001",
		FirstName:         "Jane",
		LastName:          "Doe",
		BirthDate:         "1980-05-01",
		Gender:            "FEMALE",
		AddressStreetName: "Main",
		AddressStreetNo:   "5",
		AddressType:       "BOTH",
	}
}

func TestNormalizeGender(t *testing.T) {
	cases := map[string]string{
		"MALE":   constvars.FhirGenderMale,
		"male":   constvars.FhirGenderMale,
		"Female": constvars.FhirGenderFemale,
		"":       constvars.FhirGenderUnknown,
		"other":  constvars.FhirGenderUnknown,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeGender(input), "input %q", input)
	}
}

func TestNormalizeAddressType(t *testing.T) {
	assert.Equal(t, constvars.FhirAddressTypeBoth, NormalizeAddressType("both"))
	assert.Equal(t, constvars.FhirAddressTypePhysical, NormalizeAddressType("PHYSICAL"))
	assert.Equal(t, constvars.FhirAddressTypePostal, NormalizeAddressType(""))
	assert.Equal(t, constvars.FhirAddressTypePostal, NormalizeAddressType("mailbox"))
}

func TestBuildFhirPatientFromCsv(t *testing.T) {
	t.Run("Jane Doe", func(t *testing.T) {
		patient := BuildFhirPatientFromCsv(janeDoe(), usOnly, "Organization/1")

		assert.Equal(t, constvars.ResourcePatient, patient.ResourceType)
		assert.Len(t, patient.ID, 32)
		assert.True(t, patient.Active)
		assert.Equal(t, constvars.FhirGenderFemale, patient.Gender)
		assert.Equal(t, constvars.FhirAddressTypeBoth, patient.Address[0].Type)
		assert.Equal(t, []string{"Main 5 "}, patient.Address[0].Line)
		assert.Equal(t, "PAT0001", patient.IdentifierValue(constvars.PatientIdentifierSystem))
		assert.Equal(t, "Organization/1", patient.ManagingOrganization.Reference)
		assert.Nil(t, patient.Citizenship)
	})

	t.Run("unknown citizenship code omits the extension", func(t *testing.T) {
		record := janeDoe()
		record.CitizenshipCode = "XX"

		patient := BuildFhirPatientFromCsv(record, usOnly, "")

		assert.Nil(t, patient.Citizenship)
		assert.Nil(t, patient.ManagingOrganization)
	})

	t.Run("known citizenship code builds code and period", func(t *testing.T) {
		record := janeDoe()
		record.CitizenshipCode = "US"

		patient := BuildFhirPatientFromCsv(record, usOnly, "")

		if assert.NotNil(t, patient.Citizenship) {
			coding := patient.Citizenship.Code.Coding[0]
			assert.Equal(t, constvars.CitizenshipCodingSystem, coding.System)
			assert.Equal(t, "US", coding.Code)
			assert.Equal(t, "United States", coding.Display)
			assert.Equal(t, "1776-07-04", patient.Citizenship.Period.Start)
		}
	})

	t.Run("list keeps order and length", func(t *testing.T) {
		first, second := janeDoe(), janeDoe()
		second.Identifier = "PAT0002"

		patients := BuildFhirPatientsFromCsv([]requests.PatientCsv{first, second}, usOnly, "")

		assert.Len(t, patients, 2)
		assert.Equal(t, "PAT0001", patients[0].Identifier[0].Value)
		assert.Equal(t, "PAT0002", patients[1].Identifier[0].Value)
		assert.NotEqual(t, patients[0].ID, patients[1].ID)
	})
}

func TestCsvRoundTripPreservesDetail(t *testing.T) {
	record := janeDoe()
	record.Prefix = "Dr."
	record.BirthPlace = "Springfield"
	record.AddressCity = "Shelbyville"
	record.AddressCountry = "US"
	record.AddressPostalCode = "12345"
	record.CitizenshipCode = "US"

	detail := BuildPatientDetail(BuildFhirPatientFromCsv(record, usOnly, ""))

	assert.Equal(t, "PAT0001", detail.Identifier)
	assert.Equal(t, "Dr.", detail.Prefix)
	assert.Equal(t, "Jane", detail.FirstName)
	assert.Equal(t, "Doe", detail.LastName)
	assert.Equal(t, "1980-05-01", detail.BirthDate)
	assert.Equal(t, "Springfield", detail.BirthPlace)
	assert.Equal(t, "United States", detail.Citizenship)
	assert.Equal(t, "US", detail.CitizenshipCode)
	assert.Equal(t, "Female", detail.Gender)
	assert.Equal(t, "Shelbyville", detail.Address.City)
	assert.Equal(t, "US", detail.Address.Country)
	assert.Equal(t, "12345", detail.Address.PostalCode)
	assert.Equal(t, "Both", detail.Address.Type)
}

func TestApplyPatientRequest(t *testing.T) {
	request := &requests.PatientRequest{
		Identifier:      "PAT0001",
		FirstName:       "Janet",
		LastName:        "Roe",
		BirthDate:       "1981-01-01",
		BirthPlace:      "Ogdenville",
		CitizenshipCode: "US",
		Gender:          "male",
		Address:         &requests.AddressRequest{StreetName: "Elm", StreetNo: "7", AppartmentNo: "2b", Type: "physical"},
	}

	t.Run("existing extensions are updated", func(t *testing.T) {
		patient := BuildFhirPatientFromCsv(janeDoe(), usOnly, "")
		patient.Citizenship = &fhir_dto.Citizenship{
			Code:   fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{System: constvars.CitizenshipCodingSystem, Code: "CA", Display: "Canada"}}},
			Period: fhir_dto.Period{Start: "1867-07-01"},
		}

		ApplyPatientRequest(patient, request, usOnly)

		assert.Equal(t, constvars.FhirGenderMale, patient.Gender)
		assert.Equal(t, "Janet", patient.Name[0].Given[0])
		assert.Equal(t, "Roe", patient.Name[0].Family)
		assert.Equal(t, []string{"Elm 7 2b"}, patient.Address[0].Line)
		assert.Equal(t, constvars.FhirAddressTypePhysical, patient.Address[0].Type)
		assert.Equal(t, "Ogdenville", patient.BirthPlace.City)
		assert.Equal(t, "US", patient.Citizenship.Code.Coding[0].Code)
		assert.Equal(t, "United States", patient.Citizenship.Code.Coding[0].Display)
		assert.Equal(t, "1867-07-01", patient.Citizenship.Period.Start)
	})

	t.Run("missing birth place stays missing", func(t *testing.T) {
		patient := &fhir_dto.Patient{ResourceType: constvars.ResourcePatient}

		ApplyPatientRequest(patient, request, usOnly)

		assert.Nil(t, patient.BirthPlace)
		assert.NotNil(t, patient.Citizenship)
	})

	t.Run("unresolved code leaves citizenship untouched", func(t *testing.T) {
		patient := &fhir_dto.Patient{ResourceType: constvars.ResourcePatient}
		unresolved := *request
		unresolved.CitizenshipCode = "XX"

		ApplyPatientRequest(patient, &unresolved, usOnly)

		assert.Nil(t, patient.Citizenship)
	})
}

func TestBuildFhirPatientFromRequest(t *testing.T) {
	patient := BuildFhirPatientFromRequest(&requests.PatientRequest{
		Identifier: "PAT0009",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Gender:     "FEMALE",
	}, "Organization/7")

	assert.Equal(t, "PAT0009", patient.Identifier[0].Value)
	assert.Equal(t, constvars.FhirGenderFemale, patient.Gender)
	assert.Equal(t, []string{"  "}, patient.Address[0].Line)
	assert.Equal(t, constvars.FhirAddressTypePostal, patient.Address[0].Type)
	assert.Nil(t, patient.BirthPlace)
	assert.Nil(t, patient.Citizenship)
}
