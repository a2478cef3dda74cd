package controllers

import (
	"net/http"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CitizenshipController struct {
	Log                *zap.Logger
	CitizenshipService contracts.CitizenshipService
}

func NewCitizenshipController(logger *zap.Logger, citizenshipService contracts.CitizenshipService) *CitizenshipController {
	return &CitizenshipController{
		Log:                logger,
		CitizenshipService: citizenshipService,
	}
}

func (ctrl *CitizenshipController) ReloadCitizenships(w http.ResponseWriter, r *http.Request) {
	count, err := ctrl.CitizenshipService.Reload(r.Context())
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReloadCitizenshipsSuccessMessage, map[string]int{"count": count})
}

func (ctrl *CitizenshipController) GetCitizenship(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, constvars.URLParamCode)

	entry, ok := ctrl.CitizenshipService.Get(code)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCitizenshipNotFound(nil, code))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCitizenshipSuccessMessage, responses.Citizenship{
		Code:        entry.Code,
		Explanation: entry.Explanation,
		From:        entry.From,
		Through:     entry.Through,
	})
}
