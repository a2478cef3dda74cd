package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockImportQuota struct {
	mock.Mock
}

func (m *mockImportQuota) Evaluate(ctx context.Context, in *contracts.ImportQuotaInput) (*contracts.ImportQuotaOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.ImportQuotaOutput)
	return out, args.Error(1)
}

func TestEnforceImportQuota(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	serve := func(quota contracts.ImportQuota) *httptest.ResponseRecorder {
		m := &Middlewares{Log: zap.NewNop(), ImportQuota: quota}
		req := httptest.NewRequest(http.MethodPost, "/patients/upload", nil)
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_AUTH_SUBJECT_KEY, "operator-1"))
		rec := httptest.NewRecorder()
		m.EnforceImportQuota(ok).ServeHTTP(rec, req)
		return rec
	}

	t.Run("no quota configured", func(t *testing.T) {
		assert.Equal(t, http.StatusAccepted, serve(nil).Code)
	})

	t.Run("allowed", func(t *testing.T) {
		quota := new(mockImportQuota)
		quota.On("Evaluate", mock.Anything, mock.MatchedBy(func(in *contracts.ImportQuotaInput) bool {
			return in.Subject == "operator-1"
		})).Return(&contracts.ImportQuotaOutput{Allowed: true}, nil)

		assert.Equal(t, http.StatusAccepted, serve(quota).Code)
		quota.AssertExpectations(t)
	})

	t.Run("rejected with retry after", func(t *testing.T) {
		quota := new(mockImportQuota)
		quota.On("Evaluate", mock.Anything, mock.Anything).
			Return(&contracts.ImportQuotaOutput{Allowed: false, RetryAfterSecs: 42}, nil)

		rec := serve(quota)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "42", rec.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("store outage lets the upload through", func(t *testing.T) {
		quota := new(mockImportQuota)
		quota.On("Evaluate", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

		assert.Equal(t, http.StatusAccepted, serve(quota).Code)
	})
}
