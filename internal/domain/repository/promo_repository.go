package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromoRepository interface {
	Create(db *gorm.DB, promo *entity.Promo) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Promo, error)
	FindAll(db *gorm.DB) ([]entity.Promo, error)
	FindByStatus(db *gorm.DB, status entity.PromoStatus) ([]entity.Promo, error)
	Update(db *gorm.DB, promo *entity.Promo) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
