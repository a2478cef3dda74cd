package routers

import (
	"net/http"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/delivery/http/controllers"
	"patient-sync-service/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Patient      *controllers.PatientController
	Observation  *controllers.ObservationController
	Organization *controllers.OrganizationController
	Medication   *controllers.MedicationController
	Citizenship  *controllers.CitizenshipController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	versionPrefix := "/" + strings.Trim(internalConfig.App.Version, "/")
	requestTimeout := requestTimeoutMiddleware(internalConfig.App.RequestTimeoutInSeconds)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.Authenticate)

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, requestTimeout, ctrls.Patient)
			})

			r.Route("/imports", func(r chi.Router) {
				r.Use(requestTimeout)
				attachImportRoutes(r, ctrls.Patient)
			})

			r.Route("/observations", func(r chi.Router) {
				r.Use(requestTimeout)
				attachObservationRoutes(r, ctrls.Observation)
			})

			r.Route("/organizations", func(r chi.Router) {
				r.Use(requestTimeout)
				attachOrganizationRoutes(r, ctrls.Organization)
			})

			r.Route("/medications", func(r chi.Router) {
				r.Use(requestTimeout)
				attachMedicationRoutes(r, ctrls.Medication)
			})

			r.Route("/citizenships", func(r chi.Router) {
				r.Use(requestTimeout)
				attachCitizenshipRoutes(r, ctrls.Citizenship)
			})
		})
	})
}

// requestTimeoutMiddleware bounds a request's context. Bulk upload runs under its own import timeout instead.
func requestTimeoutMiddleware(seconds int) func(http.Handler) http.Handler {
	if seconds <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.Timeout(time.Duration(seconds) * time.Second)
}
