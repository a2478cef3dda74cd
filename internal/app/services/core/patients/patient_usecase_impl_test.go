package patients

import (
	"context"
	"errors"
	"net/url"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPatientUsecase(client *mockPatientFhirClient) *patientUsecase {
	citizenships := &fakeCitizenshipService{table: staticCitizenships{
		"US": {Code: "US", Explanation: "United States", From: "04/07/1776"},
	}}
	cfg := &config.InternalConfig{FHIR: config.AppFHIR{ManagingOrganization: "Organization/1"}}
	return NewPatientUsecase(client, citizenships, cfg, zap.NewNop()).(*patientUsecase)
}

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("maps request with extensions", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("CreatePatient", ctx, mock.MatchedBy(func(p *fhir_dto.Patient) bool {
			return p.Active &&
				p.BirthPlace != nil && p.BirthPlace.City == "Springfield" &&
				p.Citizenship != nil && p.Citizenship.Period.Start == "1776-07-04" &&
				p.ManagingOrganization != nil && p.ManagingOrganization.Reference == "Organization/1"
		})).Return(&fhir_dto.Patient{ID: "abc", Gender: constvars.FhirGenderFemale}, nil)

		detail, err := newPatientUsecase(client).CreatePatient(ctx, &requests.PatientRequest{
			Identifier:      "P-1",
			FirstName:       "Jane",
			LastName:        "Doe",
			BirthPlace:      "Springfield",
			CitizenshipCode: "US",
			Gender:          "female",
		})

		assert.NoError(t, err)
		assert.Equal(t, "abc", detail.ID)
		client.AssertExpectations(t)
	})

	t.Run("placeholder names are rejected", func(t *testing.T) {
		client := new(mockPatientFhirClient)

		detail, err := newPatientUsecase(client).CreatePatient(ctx, &requests.PatientRequest{
			Identifier: "P-1",
			FirstName:  "string",
			LastName:   "Doe",
		})

		assert.Nil(t, detail)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		client.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})
}

func TestUpdatePatient(t *testing.T) {
	ctx := context.Background()
	request := &requests.PatientRequest{Identifier: "P-1", FirstName: "Jane", LastName: "Roe", CitizenshipCode: "XX"}

	t.Run("not found", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", ctx, constvars.PatientIdentifierSystem, "P-1").Return(nil, false, nil)

		_, err := newPatientUsecase(client).UpdatePatient(ctx, request)

		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("unresolved citizenship keeps the stored one", func(t *testing.T) {
		stored := &fhir_dto.Patient{
			ID:          "r1",
			Citizenship: &fhir_dto.Citizenship{Code: fhir_dto.CodeableConcept{Text: "United States"}},
		}
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", ctx, constvars.PatientIdentifierSystem, "P-1").Return(stored, true, nil)
		client.On("UpdatePatient", ctx, mock.MatchedBy(func(p *fhir_dto.Patient) bool {
			return p.ID == "r1" && p.Citizenship != nil && p.Citizenship.Code.Text == "United States"
		})).Return(stored, nil)

		detail, err := newPatientUsecase(client).UpdatePatient(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "r1", detail.ID)
		client.AssertExpectations(t)
	})
}

func TestDeletePatientByIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("absent identifier returns false", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", ctx, constvars.PatientIdentifierSystem, "P-9").Return(nil, false, nil)

		deleted, err := newPatientUsecase(client).DeletePatientByIdentifier(ctx, "P-9")

		assert.NoError(t, err)
		assert.False(t, deleted)
		client.AssertNotCalled(t, "DeletePatientByID", mock.Anything, mock.Anything)
	})

	t.Run("deletes by registry id", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", ctx, constvars.PatientIdentifierSystem, "P-1").Return(&fhir_dto.Patient{ID: "r1"}, true, nil)
		client.On("DeletePatientByID", ctx, "r1").Return(nil)

		deleted, err := newPatientUsecase(client).DeletePatientByIdentifier(ctx, "P-1")

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("transport error is not a miss", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", ctx, constvars.PatientIdentifierSystem, "P-1").Return(nil, false, errors.New("timeout"))

		deleted, err := newPatientUsecase(client).DeletePatientByIdentifier(ctx, "P-1")

		assert.Error(t, err)
		assert.False(t, deleted)
	})
}

func TestListPatients(t *testing.T) {
	ctx := context.Background()
	client := new(mockPatientFhirClient)
	client.On("SearchPatients", ctx, url.Values{constvars.FhirSearchParamCount: []string{"10"}}).
		Return([]fhir_dto.Patient{{ID: "a"}, {ID: "b"}}, nil)

	details, err := newPatientUsecase(client).ListPatients(ctx, 0)

	assert.NoError(t, err)
	assert.Len(t, details, 2)
	client.AssertExpectations(t)
}

func TestFindPatientsByName(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a name part", func(t *testing.T) {
		_, err := newPatientUsecase(new(mockPatientFhirClient)).FindPatientsByName(ctx, "", "")
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("family only", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("SearchPatients", ctx, url.Values{constvars.FhirSearchParamFamily: []string{"Doe"}}).Return([]fhir_dto.Patient{{ID: "a"}}, nil)

		details, err := newPatientUsecase(client).FindPatientsByName(ctx, "", "Doe")

		assert.NoError(t, err)
		assert.Len(t, details, 1)
	})
}

func TestUpdatePatientMaritalStatus(t *testing.T) {
	ctx := context.Background()
	client := new(mockPatientFhirClient)
	client.On("FindPatientByID", ctx, "r1").Return(&fhir_dto.Patient{ID: "r1"}, true, nil)
	client.On("UpdatePatient", ctx, mock.MatchedBy(func(p *fhir_dto.Patient) bool {
		return p.MaritalStatus != nil && len(p.MaritalStatus.Coding) == 1 && p.MaritalStatus.Coding[0].Code == "M"
	})).Return(&fhir_dto.Patient{ID: "r1"}, nil)

	_, err := newPatientUsecase(client).UpdatePatientMaritalStatus(ctx, "r1", "m")

	assert.NoError(t, err)
	client.AssertExpectations(t)
}
