package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacilityPhotoRepository interface {
	Create(db *gorm.DB, photo *entity.FacilityPhoto) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FacilityPhoto, error)
	FindAll(db *gorm.DB) ([]entity.FacilityPhoto, error)
	Update(db *gorm.DB, photo *entity.FacilityPhoto) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
