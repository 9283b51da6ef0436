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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	doctor, err := h.doctorUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, doctor)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "Doctor deleted successfully", nil)
}
