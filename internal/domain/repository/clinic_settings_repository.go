package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// ClinicSettingsRepository manages the singleton settings row.
type ClinicSettingsRepository interface {
	FindCurrent(db *gorm.DB) (*entity.ClinicSettings, error)
	Save(db *gorm.DB, settings *entity.ClinicSettings) error
}
