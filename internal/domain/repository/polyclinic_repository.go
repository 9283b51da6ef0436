package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PolyClinicRepository interface {
	Create(db *gorm.DB, polyclinic *entity.PolyClinic) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PolyClinic, error)
	FindAll(db *gorm.DB) ([]entity.PolyClinic, error)
	FindByStatus(db *gorm.DB, status entity.PolyClinicStatus) ([]entity.PolyClinic, error)
	Update(db *gorm.DB, polyclinic *entity.PolyClinic) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
