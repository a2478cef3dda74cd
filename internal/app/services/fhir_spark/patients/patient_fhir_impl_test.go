package patients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"patient-sync-service/internal/app/services/fhir_spark"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const janeJSON = `{
	"resourceType": "Patient",
	"id": "a1",
	"active": true,
	"identifier": [{"system": "http://acme.org/patient-ids", "value": "PAT0001"}],
	"name": [{"use": "official", "given": ["Jane"], "family": "Doe"}],
	"extension": [
		{"url": "http://hl7.org/fhir/StructureDefinition/patient-birthPlace", "valueAddress": {"city": "Springfield"}}
	]
}`

func newTestClient(handler http.HandlerFunc) (*patientFhirClient, func()) {
	server := httptest.NewServer(handler)
	client := newPatientFhirClient(fhir_spark.NewClient(server.URL, "", time.Second), zap.NewNop())
	return client, server.Close
}

func TestFindPatientByIdentifier(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var gotQuery string
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get(constvars.FhirSearchParamIdentifier)
			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":1,"entry":[{"resource":` + janeJSON + `}]}`))
		})
		defer closeFn()

		patient, found, err := client.FindPatientByIdentifier(context.Background(), constvars.PatientIdentifierSystem, "PAT0001")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "a1", patient.ID)
		assert.Equal(t, "Springfield", patient.BirthPlace.City)
		assert.Equal(t, "http://acme.org/patient-ids|PAT0001", gotQuery)
	})

	t.Run("absent", func(t *testing.T) {
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":0}`))
		})
		defer closeFn()

		patient, found, err := client.FindPatientByIdentifier(context.Background(), constvars.PatientIdentifierSystem, "PAT0404")

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, patient)
	})

	t.Run("registry error", func(t *testing.T) {
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"diagnostics":"database down"}]}`))
		})
		defer closeFn()

		_, found, err := client.FindPatientByIdentifier(context.Background(), constvars.PatientIdentifierSystem, "PAT0001")

		assert.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "database down")
	})
}

func TestFindPatientByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Patient/a1", r.URL.Path)
			w.Write([]byte(janeJSON))
		})
		defer closeFn()

		patient, found, err := client.FindPatientByID(context.Background(), "a1")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Jane", patient.Name[0].Given[0])
	})

	t.Run("deleted resource is absent", func(t *testing.T) {
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
		})
		defer closeFn()

		_, found, err := client.FindPatientByID(context.Background(), "a1")

		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestCreatePatient(t *testing.T) {
	t.Run("sends explicit extensions", func(t *testing.T) {
		var sent string
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			sent = string(body)
			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		})
		defer closeFn()

		created, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{
			ID:         "a2",
			BirthPlace: &fhir_dto.Address{City: "Ogdenville"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "a2", created.ID)
		assert.Contains(t, sent, constvars.BirthPlaceExtensionURL)
		assert.Equal(t, "Ogdenville", created.BirthPlace.City)
	})

	t.Run("outcome diagnostics become the error", func(t *testing.T) {
		client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"diagnostics":"gender invalid"}]}`))
		})
		defer closeFn()

		_, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
		assert.Contains(t, err.Error(), "gender invalid")
	})
}

func TestDeletePatientByID(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	defer closeFn()

	assert.NoError(t, client.DeletePatientByID(context.Background(), "a1"))
}
