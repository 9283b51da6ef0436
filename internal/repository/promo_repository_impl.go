package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type promoRepository struct{}

func NewPromoRepository() domainRepo.PromoRepository {
	return &promoRepository{}
}

func (r *promoRepository) Create(db *gorm.DB, promo *entity.Promo) error {
	return db.Create(promo).Error
}

func (r *promoRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Promo, error) {
	var promo entity.Promo
	err := db.Where("id = ?", id).First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

func (r *promoRepository) FindAll(db *gorm.DB) ([]entity.Promo, error) {
	var promos []entity.Promo
	err := db.Order("created_at DESC").Find(&promos).Error
	if err != nil {
		return nil, err
	}
	return promos, nil
}

func (r *promoRepository) FindByStatus(db *gorm.DB, status entity.PromoStatus) ([]entity.Promo, error) {
	var promos []entity.Promo
	err := db.Where("status = ?", status).Order("created_at DESC").Find(&promos).Error
	if err != nil {
		return nil, err
	}
	return promos, nil
}

func (r *promoRepository) Update(db *gorm.DB, promo *entity.Promo) error {
	return db.Save(promo).Error
}

func (r *promoRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Promo{}).Error
}

func (r *promoRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Promo{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
