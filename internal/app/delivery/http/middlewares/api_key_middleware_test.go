package middlewares

import (
	"net/http"
	"net/http/httptest"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAPIKey    = "test-api-key-12345"
	testJWTSecret = "test-jwt-secret"
)

func newAuthMiddlewares(t *testing.T, auth config.AppAuth) *Middlewares {
	t.Helper()
	return &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{Auth: auth},
	}
}

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "operator-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	assert.NoError(t, err)

	middlewares := newAuthMiddlewares(t, config.AppAuth{APIKeyHash: string(hash), JWTSecret: testJWTSecret})

	var gotSubject string
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = r.Context().Value(constvars.CONTEXT_AUTH_SUBJECT_KEY).(string)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
	handler := middlewares.Authenticate(testHandler)

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/patients/upload", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
		assert.Equal(t, apiKeySubject, gotSubject)
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/patients/upload", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+signedToken(t, testJWTSecret, time.Now().Add(time.Hour)))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "operator-1", gotSubject)
	})

	t.Run("Expired bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+signedToken(t, testJWTSecret, time.Now().Add(-time.Hour)))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+signedToken(t, "other", time.Now().Add(time.Hour)))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthenticateDisabled(t *testing.T) {
	middlewares := newAuthMiddlewares(t, config.AppAuth{})

	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/patients", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newAuthMiddlewares(t, config.AppAuth{})

	t.Run("keeps client id", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-1", seen)
		assert.Equal(t, "client-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates one", func(t *testing.T) {
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
	})
}

func TestErrorHandlerRecovers(t *testing.T) {
	middlewares := newAuthMiddlewares(t, config.AppAuth{})
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
