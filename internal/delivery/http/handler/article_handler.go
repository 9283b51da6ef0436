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

type ArticleHandler struct {
	articleUsecase usecase.ArticleUsecase
	validator      *validator.CustomValidator
}

func NewArticleHandler(articleUsecase usecase.ArticleUsecase, validator *validator.CustomValidator) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		validator:      validator,
	}
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	article, err := h.articleUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, article)
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	article, err := h.articleUsecase.Get(r.Context(), id.UUID())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, article)
}

func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	article, err := h.articleUsecase.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, article)
}

func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleUsecase.GetAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, articles)
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", apperrors.CodeValidation)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationErrors(err), apperrors.CodeValidation)
		return
	}

	article, err := h.articleUsecase.Update(r.Context(), id.UUID(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, article)
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := valueobject.NewEntityID(mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := h.articleUsecase.Delete(r.Context(), id.UUID()); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMessage(w, http.StatusOK, "Article deleted successfully", nil)
}
