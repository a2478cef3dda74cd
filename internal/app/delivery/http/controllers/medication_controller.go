package controllers

import (
	"net/http"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
}

func NewMedicationController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
	}
}

func (ctrl *MedicationController) GetMedicationsForPatient(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.MedicationUsecase.GetMedicationsForPatient(r.Context(), chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicationsSuccessMessage, response)
}
