package medications

import (
	"context"
	"errors"
	"net/url"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockMedicationFhirClient struct {
	mock.Mock
}

func (m *mockMedicationFhirClient) FindMedicationByID(ctx context.Context, medicationID string) (*fhir_dto.Medication, bool, error) {
	args := m.Called(ctx, medicationID)
	medication, _ := args.Get(0).(*fhir_dto.Medication)
	return medication, args.Bool(1), args.Error(2)
}

func (m *mockMedicationFhirClient) SearchMedicationRequests(ctx context.Context, params url.Values) ([]fhir_dto.MedicationRequest, error) {
	args := m.Called(ctx, params)
	requests, _ := args.Get(0).([]fhir_dto.MedicationRequest)
	return requests, args.Error(1)
}

func medicationRequest(reference string) fhir_dto.MedicationRequest {
	return fhir_dto.MedicationRequest{MedicationReference: &fhir_dto.Reference{Reference: reference}}
}

func TestGetMedicationsForPatient(t *testing.T) {
	ctx := context.Background()
	subject := url.Values{constvars.FhirSearchParamSubject: []string{"Patient/p1"}}

	t.Run("reads every referenced medication in order", func(t *testing.T) {
		client := new(mockMedicationFhirClient)
		client.On("SearchMedicationRequests", ctx, subject).Return([]fhir_dto.MedicationRequest{
			medicationRequest("Medication/m1"),
			{MedicationCodeableConcept: &fhir_dto.CodeableConcept{Text: "inline"}},
			medicationRequest("Medication/m2"),
			medicationRequest("Medication/gone"),
		}, nil)
		client.On("FindMedicationByID", mock.Anything, "m1").Return(&fhir_dto.Medication{ID: "m1", Code: &fhir_dto.CodeableConcept{Text: "Aspirin"}}, true, nil)
		client.On("FindMedicationByID", mock.Anything, "m2").Return(&fhir_dto.Medication{ID: "m2", Code: &fhir_dto.CodeableConcept{Text: "Ibuprofen"}}, true, nil)
		client.On("FindMedicationByID", mock.Anything, "gone").Return(nil, false, nil)

		result, err := NewMedicationUsecase(client, zap.NewNop()).GetMedicationsForPatient(ctx, "p1")

		assert.NoError(t, err)
		if assert.Len(t, result, 2) {
			assert.Equal(t, "m1", result[0].ID)
			assert.Equal(t, "m2", result[1].ID)
		}
		client.AssertExpectations(t)
	})

	t.Run("no requests", func(t *testing.T) {
		client := new(mockMedicationFhirClient)
		client.On("SearchMedicationRequests", ctx, subject).Return([]fhir_dto.MedicationRequest{}, nil)

		result, err := NewMedicationUsecase(client, zap.NewNop()).GetMedicationsForPatient(ctx, "p1")

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("read failure", func(t *testing.T) {
		client := new(mockMedicationFhirClient)
		client.On("SearchMedicationRequests", ctx, subject).Return([]fhir_dto.MedicationRequest{medicationRequest("Medication/m1")}, nil)
		client.On("FindMedicationByID", mock.Anything, "m1").Return(nil, false, errors.New("boom"))

		_, err := NewMedicationUsecase(client, zap.NewNop()).GetMedicationsForPatient(ctx, "p1")

		assert.Error(t, err)
	})
}
