package controllers

import (
	"net/http"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ObservationController struct {
	Log                *zap.Logger
	ObservationUsecase contracts.ObservationUsecase
}

func NewObservationController(logger *zap.Logger, observationUsecase contracts.ObservationUsecase) *ObservationController {
	return &ObservationController{
		Log:                logger,
		ObservationUsecase: observationUsecase,
	}
}

func (ctrl *ObservationController) AddObservation(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	kind := chi.URLParam(r, constvars.URLParamKind)

	request := new(requests.ObservationRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.ObservationUsecase.AddObservation(r.Context(), patientID, kind, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateObservationSuccessMessage, response)
}

func (ctrl *ObservationController) GetObservation(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.ObservationUsecase.GetObservation(r.Context(), chi.URLParam(r, constvars.URLParamObservationID))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObservationSuccessMessage, response)
}

func (ctrl *ObservationController) GetObservationsForPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	kind := r.URL.Query().Get(constvars.URLQueryParamKind)

	response, err := ctrl.ObservationUsecase.GetObservationsForPatient(r.Context(), patientID, kind)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObservationsSuccessMessage, response)
}
