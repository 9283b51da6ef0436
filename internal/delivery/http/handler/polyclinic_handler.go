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

type PolyClinicHandler struct {
	polyClinicUsecase usecase.PolyClinicUsecase
	validator         *validator.CustomValidator
}

func NewPolyClinicHandler(polyClinicUsecase usecase.PolyClinicUsecase, validator *validator.CustomValidator) *PolyClinicHandler {
	return &PolyClinicHandler{
		polyClinicUsecase: polyClinicUsecase,
		validator:         validator,
	}
}

func (h *PolyClinicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePolyClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	polyclinic, err := h.polyClinicUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, polyclinic)
}

func (h *PolyClinicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	polyclinic, err := h.polyClinicUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, polyclinic)
}

func (h *PolyClinicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	polyclinics, err := h.polyClinicUsecase.GetAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, polyclinics)
}

func (h *PolyClinicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdatePolyClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	polyclinic, err := h.polyClinicUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, polyclinic)
}

func (h *PolyClinicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.polyClinicUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "PolyClinic deleted successfully", nil)
}

func (h *PolyClinicHandler) AddService(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.PolyClinicServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	polyclinic, err := h.polyClinicUsecase.AddService(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, polyclinic)
}

func (h *PolyClinicHandler) RemoveService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := valueobject.NewEntityID(vars["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	polyclinic, err := h.polyClinicUsecase.RemoveService(r.Context(), id.UUID(), vars["service"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, polyclinic)
}
