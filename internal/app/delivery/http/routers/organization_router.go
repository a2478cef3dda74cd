package routers

import (
	"patient-sync-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachOrganizationRoutes(router chi.Router, organizationController *controllers.OrganizationController) {
	router.Post("/", organizationController.AddOrganization)
	router.Get("/identifier/{identifier}", organizationController.FindOrganizationByIdentifier)
}

func attachMedicationRoutes(router chi.Router, medicationController *controllers.MedicationController) {
	router.Get("/patient/{patientID}", medicationController.GetMedicationsForPatient)
}

func attachCitizenshipRoutes(router chi.Router, citizenshipController *controllers.CitizenshipController) {
	router.Post("/reload", citizenshipController.ReloadCitizenships)
	router.Get("/{code}", citizenshipController.GetCitizenship)
}
