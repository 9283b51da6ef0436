package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartnerRepository interface {
	Create(db *gorm.DB, partner *entity.Partner) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Partner, error)
	FindAll(db *gorm.DB) ([]entity.Partner, error)
	Update(db *gorm.DB, partner *entity.Partner) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
