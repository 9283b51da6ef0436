package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePartnerRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Name     string `json:"name"`
	Link     string `json:"link" validate:"omitempty,url"`
}

type UpdatePartnerRequest struct {
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
	Name     *string `json:"name"`
	Link     *string `json:"link" validate:"omitempty,url"`
}

type PartnerResponse struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	Name      string    `json:"name,omitempty"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PartnerListResponse struct {
	Partners []PartnerResponse `json:"partners"`
	Total    int               `json:"total"`
}
