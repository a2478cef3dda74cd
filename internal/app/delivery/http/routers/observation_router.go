package routers

import (
	"patient-sync-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachObservationRoutes(router chi.Router, observationController *controllers.ObservationController) {
	router.Get("/patient/{patientID}", observationController.GetObservationsForPatient)
	router.Get("/{observationID}", observationController.GetObservation)
	router.Post("/{patientID}/{kind}", observationController.AddObservation)
}
