package handler

import (
	"encoding/json"
	"net/http"

	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/valueobject"
	"clinic-cms-backend/internal/usecase"
	"clinic-cms-backend/pkg/apperrors"
	"clinic-cms-backend/pkg/response"
	"clinic-cms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type FacilityPhotoHandler struct {
	photoUsecase usecase.FacilityPhotoUsecase
	validator    *validator.CustomValidator
}

func NewFacilityPhotoHandler(photoUsecase usecase.FacilityPhotoUsecase, validator *validator.CustomValidator) *FacilityPhotoHandler {
	return &FacilityPhotoHandler{
		photoUsecase: photoUsecase,
		validator:    validator,
	}
}

func (h *FacilityPhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFacilityPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	photo, err := h.photoUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, photo)
}

func (h *FacilityPhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	photo, err := h.photoUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, photo)
}

func (h *FacilityPhotoHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photoUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, photos)
}

func (h *FacilityPhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdateFacilityPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	photo, err := h.photoUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, photo)
}

func (h *FacilityPhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.photoUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "Facility photo deleted successfully", nil)
}
