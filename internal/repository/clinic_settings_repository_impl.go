package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicSettingsRepository struct{}

func NewClinicSettingsRepository() domainRepo.ClinicSettingsRepository {
	return &clinicSettingsRepository{}
}

func (r *clinicSettingsRepository) FindCurrent(db *gorm.DB) (*entity.ClinicSettings, error) {
	var settings entity.ClinicSettings
	err := db.Where("id = ?", entity.ClinicSettingsID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Save upserts the singleton row by primary key.
func (r *clinicSettingsRepository) Save(db *gorm.DB, settings *entity.ClinicSettings) error {
	return db.Save(settings).Error
}
