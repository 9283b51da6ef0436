package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	Name            string `json:"name" validate:"required"`
	Testimonial     string `json:"testimonial_text" validate:"required"`
	PhotoURL        string `json:"photo_url" validate:"omitempty,url"`
	PatientCategory string `json:"patient_category"`
	Rate            int    `json:"rate" validate:"required,gte=1,lte=5"`
}

type UpdateTestimonialRequest struct {
	Name            *string `json:"name" validate:"omitempty"`
	Testimonial     *string `json:"testimonial_text" validate:"omitempty"`
	PhotoURL        *string `json:"photo_url" validate:"omitempty,url"`
	PatientCategory *string `json:"patient_category"`
	Rate            *int    `json:"rate" validate:"omitempty,gte=1,lte=5"`
}

type TestimonialResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Testimonial     string    `json:"testimonial_text"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	PatientCategory string    `json:"patient_category,omitempty"`
	Rate            int       `json:"rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TestimonialListResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	Total        int                   `json:"total"`
}
