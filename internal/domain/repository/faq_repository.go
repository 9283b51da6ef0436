package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQRepository interface {
	Create(db *gorm.DB, faq *entity.FAQ) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FAQ, error)
	FindAll(db *gorm.DB) ([]entity.FAQ, error)
	Update(db *gorm.DB, faq *entity.FAQ) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
