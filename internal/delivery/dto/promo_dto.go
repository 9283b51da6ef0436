package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs. Dates come in as strings ("2006-01-02" or RFC3339) and are
// parsed at the usecase boundary.

type CreatePromoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type UpdatePromoRequest struct {
	Title       *string `json:"title" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Response DTOs

type PromoResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	ImageURL          string     `json:"image_url,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	Status            string     `json:"status"`
	IsCurrentlyActive bool       `json:"is_currently_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type PromoListResponse struct {
	Promos []PromoResponse `json:"promos"`
	Total  int             `json:"total"`
}
