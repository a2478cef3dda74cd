package controllers

import (
	"net/http"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/utils"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OrganizationController struct {
	Log     *zap.Logger
	Usecase contracts.OrganizationUsecase
}

func NewOrganizationController(logger *zap.Logger, uc contracts.OrganizationUsecase) *OrganizationController {
	return &OrganizationController{
		Log:     logger,
		Usecase: uc,
	}
}

func (ctrl *OrganizationController) AddOrganization(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	var request requests.OrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("OrganizationController.AddOrganization error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	out, err := ctrl.Usecase.AddOrganization(r.Context(), &request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOrganizationSuccessMessage, out)
}

func (ctrl *OrganizationController) FindOrganizationByIdentifier(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, constvars.URLParamIdentifier)
	if strings.TrimSpace(identifier) == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamIdentifier))
		return
	}

	out, err := ctrl.Usecase.FindOrganizationByIdentifier(r.Context(), identifier)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrganizationSuccessMessage, out)
}
