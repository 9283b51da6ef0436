package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func TestimonialToResponse(testimonial *entity.Testimonial) *dto.TestimonialResponse {
	if testimonial == nil {
		return nil
	}

	return &dto.TestimonialResponse{
		ID:              testimonial.ID,
		Name:            testimonial.Name,
		Testimonial:     testimonial.Testimonial,
		PhotoURL:        testimonial.PhotoURL,
		PatientCategory: testimonial.PatientCategory,
		Rate:            testimonial.Rate,
		CreatedAt:       testimonial.CreatedAt,
		UpdatedAt:       testimonial.UpdatedAt,
	}
}

func TestimonialsToListResponse(testimonials []entity.Testimonial) *dto.TestimonialListResponse {
	responses := make([]dto.TestimonialResponse, len(testimonials))
	for i := range testimonials {
		responses[i] = *TestimonialToResponse(&testimonials[i])
	}
	return &dto.TestimonialListResponse{
		Testimonials: responses,
		Total:        len(responses),
	}
}
