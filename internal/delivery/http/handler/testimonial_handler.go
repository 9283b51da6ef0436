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

type TestimonialHandler struct {
	testimonialUsecase usecase.TestimonialUsecase
	validator          *validator.CustomValidator
}

func NewTestimonialHandler(testimonialUsecase usecase.TestimonialUsecase, validator *validator.CustomValidator) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUsecase: testimonialUsecase,
		validator:          validator,
	}
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	testimonial, err := h.testimonialUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	testimonial, err := h.testimonialUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialUsecase.GetAll(r.Context(), r.URL.Query().Get("patient_category"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	testimonial, err := h.testimonialUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.testimonialUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "Testimonial deleted successfully", nil)
}
