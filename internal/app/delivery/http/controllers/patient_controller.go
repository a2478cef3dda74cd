package controllers

import (
	"io"
	"net/http"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const uploadMemoryLimit = 32 << 20

type PatientController struct {
	Log                *zap.Logger
	PatientUsecase     contracts.PatientUsecase
	PatientSyncUsecase contracts.PatientSyncUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, patientSyncUsecase contracts.PatientSyncUsecase) *PatientController {
	return &PatientController{
		Log:                logger,
		PatientUsecase:     patientUsecase,
		PatientSyncUsecase: patientSyncUsecase,
	}
}

func (ctrl *PatientController) decodePatientRequest(w http.ResponseWriter, r *http.Request) (*requests.PatientRequest, bool) {
	request := new(requests.PatientRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("PatientController error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}
	return request, true
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.decodePatientRequest(w, r)
	if !ok {
		return
	}

	response, err := ctrl.PatientUsecase.CreatePatient(r.Context(), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, response)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.decodePatientRequest(w, r)
	if !ok {
		return
	}

	response, err := ctrl.PatientUsecase.UpdatePatient(r.Context(), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, response)
}

func (ctrl *PatientController) DeletePatientByIdentifier(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, constvars.URLParamIdentifier)

	deleted, err := ctrl.PatientUsecase.DeletePatientByIdentifier(r.Context(), identifier)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	if !deleted {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientNotFound(nil, identifier))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

func (ctrl *PatientController) FindPatientByIdentifier(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.PatientUsecase.FindPatientByIdentifier(r.Context(), chi.URLParam(r, constvars.URLParamIdentifier))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, response)
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.PatientUsecase.FindPatientByID(r.Context(), chi.URLParam(r, constvars.URLParamResourceID))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, response)
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	pageSize := 0
	if raw := r.URL.Query().Get(constvars.URLQueryParamPageSize); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLQueryParamPageSize))
			return
		}
		pageSize = parsed
	}

	response, err := ctrl.PatientUsecase.ListPatients(r.Context(), pageSize)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}

func (ctrl *PatientController) FindPatientsByName(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	response, err := ctrl.PatientUsecase.FindPatientsByName(r.Context(), query.Get(constvars.URLQueryParamGiven), query.Get(constvars.URLQueryParamFamily))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}

func (ctrl *PatientController) UpdatePatientMaritalStatus(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)
	code := chi.URLParam(r, constvars.URLParamMaritalCode)

	response, err := ctrl.PatientUsecase.UpdatePatientMaritalStatus(r.Context(), resourceID, code)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientMaritalStatusSuccessMessage, response)
}

// UploadPatients takes the CSV from the multipart field "file".
func (ctrl *PatientController) UploadPatients(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		ctrl.Log.Error("PatientController.UploadPatients error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.ImportMultipartFileField)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	response, err := ctrl.PatientSyncUsecase.UploadPatients(r.Context(), header.Filename, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadPatientsSuccessMessage, response)
}

func (ctrl *PatientController) FindImportJobByID(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.PatientSyncUsecase.FindImportJobByID(r.Context(), chi.URLParam(r, constvars.URLParamJobID))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetImportJobSuccessMessage, response)
}
