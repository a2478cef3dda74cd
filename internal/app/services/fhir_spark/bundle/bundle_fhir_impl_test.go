package bundle

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"patient-sync-service/internal/app/services/fhir_spark"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPostTransactionBundle(t *testing.T) {
	t.Run("returns the transaction response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/fhir", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"type":"transaction"`)
			w.Write([]byte(`{"resourceType":"Bundle","type":"transaction-response","entry":[
				{"response":{"status":"201 Created","location":"Patient/a1/_history/1"}}]}`))
		}))
		defer server.Close()

		client := NewBundleFhirClient(fhir_spark.NewClient(server.URL+"/fhir", "", time.Second), zap.NewNop())
		result, err := client.PostTransactionBundle(context.Background(), &fhir_dto.FHIRBundle{
			ResourceType: constvars.ResourceBundle,
			Type:         constvars.FhirBundleTypeTransaction,
			Entry: []fhir_dto.Entry{{
				Resource: []byte(`{"resourceType":"Patient"}`),
				Request:  &fhir_dto.EntryRequest{Method: constvars.MethodPost, Url: constvars.ResourcePatient},
			}},
		})

		assert.NoError(t, err)
		assert.Len(t, result.Entry, 1)
		assert.Equal(t, "201 Created", result.Entry[0].Response.Status)
	})

	t.Run("whole batch fails on registry error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"diagnostics":"entry 2 invalid"}]}`))
		}))
		defer server.Close()

		client := NewBundleFhirClient(fhir_spark.NewClient(server.URL, "", time.Second), zap.NewNop())
		result, err := client.PostTransactionBundle(context.Background(), &fhir_dto.FHIRBundle{Type: constvars.FhirBundleTypeTransaction})

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "entry 2 invalid")
	})
}
