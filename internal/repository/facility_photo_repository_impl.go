package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type facilityPhotoRepository struct{}

func NewFacilityPhotoRepository() domainRepo.FacilityPhotoRepository {
	return &facilityPhotoRepository{}
}

func (r *facilityPhotoRepository) Create(db *gorm.DB, photo *entity.FacilityPhoto) error {
	return db.Create(photo).Error
}

func (r *facilityPhotoRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FacilityPhoto, error) {
	var photo entity.FacilityPhoto
	err := db.Where("id = ?", id).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *facilityPhotoRepository) FindAll(db *gorm.DB) ([]entity.FacilityPhoto, error) {
	var photos []entity.FacilityPhoto
	err := db.Order("created_at DESC").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *facilityPhotoRepository) Update(db *gorm.DB, photo *entity.FacilityPhoto) error {
	return db.Save(photo).Error
}

func (r *facilityPhotoRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.FacilityPhoto{}).Error
}

func (r *facilityPhotoRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.FacilityPhoto{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
