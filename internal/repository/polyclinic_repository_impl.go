package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type polyClinicRepository struct{}

func NewPolyClinicRepository() domainRepo.PolyClinicRepository {
	return &polyClinicRepository{}
}

func (r *polyClinicRepository) Create(db *gorm.DB, polyclinic *entity.PolyClinic) error {
	return db.Create(polyclinic).Error
}

func (r *polyClinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PolyClinic, error) {
	var polyclinic entity.PolyClinic
	err := db.Where("id = ?", id).First(&polyclinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &polyclinic, nil
}

func (r *polyClinicRepository) FindAll(db *gorm.DB) ([]entity.PolyClinic, error) {
	var polyclinics []entity.PolyClinic
	err := db.Order("created_at DESC").Find(&polyclinics).Error
	if err != nil {
		return nil, err
	}
	return polyclinics, nil
}

func (r *polyClinicRepository) FindByStatus(db *gorm.DB, status entity.PolyClinicStatus) ([]entity.PolyClinic, error) {
	var polyclinics []entity.PolyClinic
	err := db.Where("status = ?", status).Order("created_at DESC").Find(&polyclinics).Error
	if err != nil {
		return nil, err
	}
	return polyclinics, nil
}

func (r *polyClinicRepository) Update(db *gorm.DB, polyclinic *entity.PolyClinic) error {
	return db.Save(polyclinic).Error
}

func (r *polyClinicRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.PolyClinic{}).Error
}

func (r *polyClinicRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.PolyClinic{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
