package middlewares

import (
	"context"
	"net/http"
	"patient-sync-service/internal/app/services/shared/jwtmanager"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const apiKeySubject = "api-key"

// Authenticate accepts either an x-api-key matching the configured bcrypt hash or an
// HS256 bearer token signed with the configured secret. With neither configured every
// request passes.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authConfig := m.InternalConfig.Auth
		if authConfig.APIKeyHash == "" && authConfig.JWTSecret == "" {
			next.ServeHTTP(w, r)
			return
		}

		requestID := utils.RequestIDFromContext(r.Context())

		if apiKey := r.Header.Get(constvars.HeaderAPIKey); apiKey != "" && authConfig.APIKeyHash != "" {
			err := bcrypt.CompareHashAndPassword([]byte(authConfig.APIKeyHash), []byte(apiKey))
			if err != nil {
				m.Log.Warn("Middlewares.Authenticate invalid api key",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(err))
				return
			}
			next.ServeHTTP(w, withSubject(r, apiKeySubject))
			return
		}

		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) || authConfig.JWTSecret == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		subject, err := m.parseBearerToken(r.Context(), strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix), authConfig.JWTSecret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate invalid bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		next.ServeHTTP(w, withSubject(r, subject))
	})
}

func (m *Middlewares) parseBearerToken(ctx context.Context, tokenString, secret string) (string, error) {
	manager, err := jwtmanager.NewJWTManager(secret, 0, m.Log)
	if err != nil {
		return "", err
	}
	out, err := manager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: tokenString})
	if err != nil {
		return "", err
	}
	return out.Subject, nil
}

func withSubject(r *http.Request, subject string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_AUTH_SUBJECT_KEY, subject))
}
