package patients

import (
	"context"
	"errors"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func csvRecord(identifier string) requests.PatientCsv {
	return requests.PatientCsv{Nr: "1", Identifier: identifier, FirstName: "Jane", LastName: "Doe", BirthDate: "1980-01-01"}
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("splits existing from new in input order", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-1").Return(&fhir_dto.Patient{ID: "r1"}, true, nil)
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-2").Return(&fhir_dto.Patient{ID: "r2"}, true, nil)
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-3").Return(nil, false, nil)

		reconciler := NewReconciler(client, ReconcilerOptions{Concurrency: 3, FailFast: true}, zap.NewNop())
		result, err := reconciler.Reconcile(ctx, []requests.PatientCsv{csvRecord("P-1"), csvRecord("P-2"), csvRecord("P-3")})

		assert.NoError(t, err)
		if assert.Len(t, result.Existing, 2) {
			assert.Equal(t, "P-1", result.Existing[0].Record.Identifier)
			assert.Equal(t, "r1", result.Existing[0].Patient.ID)
			assert.Equal(t, "P-2", result.Existing[1].Record.Identifier)
		}
		if assert.Len(t, result.New, 1) {
			assert.Equal(t, "P-3", result.New[0].Record.Identifier)
			assert.Equal(t, 2, result.New[0].Row)
		}
		assert.Empty(t, result.Skipped)
		client.AssertExpectations(t)
	})

	t.Run("blank and repeated identifiers are skipped without a lookup", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-1").Return(nil, false, nil).Once()

		reconciler := NewReconciler(client, ReconcilerOptions{FailFast: true}, zap.NewNop())
		result, err := reconciler.Reconcile(ctx, []requests.PatientCsv{csvRecord("P-1"), csvRecord("  "), csvRecord("P-1")})

		assert.NoError(t, err)
		assert.Len(t, result.New, 1)
		assert.Empty(t, result.Existing)
		if assert.Len(t, result.Skipped, 2) {
			assert.Equal(t, 1, result.Skipped[0].Row)
			assert.Equal(t, skipReasonBlankIdentifier, result.Skipped[0].Reason)
			assert.Equal(t, "P-1", result.Skipped[1].Identifier)
			assert.Equal(t, skipReasonDuplicateIdentifier, result.Skipped[1].Reason)
		}
		client.AssertExpectations(t)
	})

	t.Run("fail fast aborts the run", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-1").Return(nil, false, errors.New("registry down"))

		reconciler := NewReconciler(client, ReconcilerOptions{FailFast: true}, zap.NewNop())
		result, err := reconciler.Reconcile(ctx, []requests.PatientCsv{csvRecord("P-1")})

		assert.EqualError(t, err, "registry down")
		assert.Nil(t, result)
	})

	t.Run("without fail fast a failed lookup is skipped", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-1").Return(nil, false, errors.New("registry down"))
		client.On("FindPatientByIdentifier", mock.Anything, constvars.PatientIdentifierSystem, "P-2").Return(nil, false, nil)

		reconciler := NewReconciler(client, ReconcilerOptions{Concurrency: 2, RatePerSecond: 100}, zap.NewNop())
		result, err := reconciler.Reconcile(ctx, []requests.PatientCsv{csvRecord("P-1"), csvRecord("P-2")})

		assert.NoError(t, err)
		assert.Empty(t, result.Existing)
		assert.Len(t, result.New, 1)
		if assert.Len(t, result.Skipped, 1) {
			assert.Equal(t, "P-1", result.Skipped[0].Identifier)
			assert.Equal(t, "registry down", result.Skipped[0].Reason)
		}
	})
}
