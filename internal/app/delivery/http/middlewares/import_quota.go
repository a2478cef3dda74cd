package middlewares

import (
	"net/http"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// EnforceImportQuota meters bulk uploads per authenticated subject.
// A quota store outage lets the upload through.
func (m *Middlewares) EnforceImportQuota(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.ImportQuota == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		subject, _ := ctx.Value(constvars.CONTEXT_AUTH_SUBJECT_KEY).(string)
		out, err := m.ImportQuota.Evaluate(ctx, &contracts.ImportQuotaInput{
			Subject: subject,
			NowUTC:  time.Now().UTC(),
		})
		if err != nil {
			m.Log.Warn("Middlewares.EnforceImportQuota quota store unavailable",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !out.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrImportQuotaExceeded(nil, subject))
			return
		}
		next.ServeHTTP(w, r)
	})
}
