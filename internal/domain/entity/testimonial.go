package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

// Testimonial represents a patient review with a 1-5 rating
type Testimonial struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Testimonial     string    `gorm:"column:testimonial_text;type:text;not null" json:"testimonial_text"`
	PhotoURL        string    `gorm:"column:photo_url;type:text" json:"photo_url,omitempty"`
	PatientCategory string    `gorm:"type:varchar(100)" json:"patient_category,omitempty"`
	Rate            int       `gorm:"not null" json:"rate"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type NewTestimonialParams struct {
	Name            string
	Testimonial     string
	PhotoURL        string
	PatientCategory string
	Rate            int
}

func NewTestimonial(id uuid.UUID, p NewTestimonialParams) (*Testimonial, error) {
	now := time.Now()
	testimonial := &Testimonial{
		ID:              id,
		Name:            p.Name,
		Testimonial:     p.Testimonial,
		PhotoURL:        p.PhotoURL,
		PatientCategory: p.PatientCategory,
		Rate:            p.Rate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := testimonial.validate(); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (t *Testimonial) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return apperrors.NewValidation("name must not be empty")
	}
	if strings.TrimSpace(t.Testimonial) == "" {
		return apperrors.NewValidation("testimonial_text must not be empty")
	}
	if t.Rate < 1 || t.Rate > 5 {
		return apperrors.NewValidation("rate must be between 1 and 5")
	}
	return nil
}

type TestimonialPatch struct {
	Name            *string
	Testimonial     *string
	PhotoURL        *string
	PatientCategory *string
	Rate            *int
}

func (t *Testimonial) Update(patch TestimonialPatch) error {
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Testimonial != nil {
		t.Testimonial = *patch.Testimonial
	}
	if patch.PhotoURL != nil {
		t.PhotoURL = *patch.PhotoURL
	}
	if patch.PatientCategory != nil {
		t.PatientCategory = *patch.PatientCategory
	}
	if patch.Rate != nil {
		t.Rate = *patch.Rate
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now()
	return nil
}
