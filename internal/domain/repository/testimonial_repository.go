package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepository interface {
	Create(db *gorm.DB, testimonial *entity.Testimonial) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Testimonial, error)
	FindAll(db *gorm.DB) ([]entity.Testimonial, error)
	FindByPatientCategory(db *gorm.DB, category string) ([]entity.Testimonial, error)
	Update(db *gorm.DB, testimonial *entity.Testimonial) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
