package routers

import (
	"net/http"
	"patient-sync-service/internal/app/delivery/http/controllers"
	"patient-sync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, requestTimeout func(http.Handler) http.Handler, patientController *controllers.PatientController) {
	router.With(middlewares.EnforceImportQuota).Post("/upload", patientController.UploadPatients)

	router.Group(func(r chi.Router) {
		r.Use(requestTimeout)
		r.Post("/", patientController.CreatePatient)
		r.Put("/", patientController.UpdatePatient)
		r.Get("/", patientController.ListPatients)
		r.Get("/search", patientController.FindPatientsByName)
		r.Get("/identifier/{identifier}", patientController.FindPatientByIdentifier)
		r.Delete("/identifier/{identifier}", patientController.DeletePatientByIdentifier)
		r.Get("/{resourceID}", patientController.FindPatientByID)
		r.Put("/{resourceID}/marital-status/{code}", patientController.UpdatePatientMaritalStatus)
	})
}

func attachImportRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/{jobID}", patientController.FindImportJobByID)
}
