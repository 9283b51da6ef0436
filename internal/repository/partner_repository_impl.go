package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type partnerRepository struct{}

func NewPartnerRepository() domainRepo.PartnerRepository {
	return &partnerRepository{}
}

func (r *partnerRepository) Create(db *gorm.DB, partner *entity.Partner) error {
	return db.Create(partner).Error
}

func (r *partnerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Partner, error) {
	var partner entity.Partner
	err := db.Where("id = ?", id).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) FindAll(db *gorm.DB) ([]entity.Partner, error) {
	var partners []entity.Partner
	err := db.Order("created_at DESC").Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *partnerRepository) Update(db *gorm.DB, partner *entity.Partner) error {
	return db.Save(partner).Error
}

func (r *partnerRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Partner{}).Error
}

func (r *partnerRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Partner{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
