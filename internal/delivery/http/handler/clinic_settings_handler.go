package handler

import (
	"encoding/json"
	"net/http"

	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/usecase"
	"clinic-cms-backend/pkg/apperrors"
	"clinic-cms-backend/pkg/response"
	"clinic-cms-backend/pkg/validator"
)

type ClinicSettingsHandler struct {
	settingsUsecase usecase.ClinicSettingsUsecase
	validator       *validator.CustomValidator
}

func NewClinicSettingsHandler(settingsUsecase usecase.ClinicSettingsUsecase, validator *validator.CustomValidator) *ClinicSettingsHandler {
	return &ClinicSettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *ClinicSettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.GetCurrent(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, settings)
}

func (h *ClinicSettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateClinicSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	settings, err := h.settingsUsecase.Update(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, settings)
}
