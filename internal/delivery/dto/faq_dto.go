package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question" validate:"omitempty"`
	Answer   *string `json:"answer" validate:"omitempty"`
}

type FAQResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQListResponse struct {
	FAQs  []FAQResponse `json:"faqs"`
	Total int           `json:"total"`
}
