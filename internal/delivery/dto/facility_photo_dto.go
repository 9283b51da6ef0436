package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFacilityPhotoRequest struct {
	ImageURL    string `json:"image_url" validate:"required,url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateFacilityPhotoRequest struct {
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type FacilityPhotoResponse struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"image_url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FacilityPhotoListResponse struct {
	Photos []FacilityPhotoResponse `json:"photos"`
	Total  int                     `json:"total"`
}
