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

type PartnerHandler struct {
	partnerUsecase usecase.PartnerUsecase
	validator      *validator.CustomValidator
}

func NewPartnerHandler(partnerUsecase usecase.PartnerUsecase, validator *validator.CustomValidator) *PartnerHandler {
	return &PartnerHandler{
		partnerUsecase: partnerUsecase,
		validator:      validator,
	}
}

func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	partner, err := h.partnerUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, partner)
}

func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	partner, err := h.partnerUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, partner)
}

func (h *PartnerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, partners)
}

func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	partner, err := h.partnerUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, partner)
}

func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.partnerUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "Partner deleted successfully", nil)
}
