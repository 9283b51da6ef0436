package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type testimonialRepository struct{}

func NewTestimonialRepository() domainRepo.TestimonialRepository {
	return &testimonialRepository{}
}

func (r *testimonialRepository) Create(db *gorm.DB, testimonial *entity.Testimonial) error {
	return db.Create(testimonial).Error
}

func (r *testimonialRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Testimonial, error) {
	var testimonial entity.Testimonial
	err := db.Where("id = ?", id).First(&testimonial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) FindAll(db *gorm.DB) ([]entity.Testimonial, error) {
	var testimonials []entity.Testimonial
	err := db.Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) FindByPatientCategory(db *gorm.DB, category string) ([]entity.Testimonial, error) {
	var testimonials []entity.Testimonial
	err := db.Where("patient_category = ?", category).Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) Update(db *gorm.DB, testimonial *entity.Testimonial) error {
	return db.Save(testimonial).Error
}

func (r *testimonialRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Testimonial{}).Error
}

func (r *testimonialRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Testimonial{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
