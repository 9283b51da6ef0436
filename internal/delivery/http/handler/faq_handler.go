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

type FAQHandler struct {
	faqUsecase usecase.FAQUsecase
	validator  *validator.CustomValidator
}

func NewFAQHandler(faqUsecase usecase.FAQUsecase, validator *validator.CustomValidator) *FAQHandler {
	return &FAQHandler{
		faqUsecase: faqUsecase,
		validator:  validator,
	}
}

func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	faq, err := h.faqUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, faq)
}

func (h *FAQHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	faq, err := h.faqUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, faq)
}

func (h *FAQHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, faqs)
}

func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	faq, err := h.faqUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, faq)
}

func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.faqUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "FAQ deleted successfully", nil)
}
