package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/internal/domain/valueobject"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

// ClinicSettingsID pins the settings to a single well-known row so
// "current settings" is a primary-key lookup rather than first-row-wins.
var ClinicSettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// ClinicSettings holds site-wide configuration, stored as a singleton row
type ClinicSettings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicName      string    `gorm:"type:varchar(255);not null" json:"clinic_name"`
	Address         string    `gorm:"type:text" json:"address,omitempty"`
	Phone           string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email           string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	MaintenanceMode bool      `gorm:"not null;default:false" json:"maintenance_mode"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClinicSettings) TableName() string {
	return "clinic_settings"
}

type NewClinicSettingsParams struct {
	ClinicName string
	Address    string
	Phone      string
	Email      string
}

func NewClinicSettings(p NewClinicSettingsParams) (*ClinicSettings, error) {
	now := time.Now()
	settings := &ClinicSettings{
		ID:              ClinicSettingsID,
		ClinicName:      p.ClinicName,
		Address:         p.Address,
		Phone:           p.Phone,
		Email:           p.Email,
		MaintenanceMode: false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *ClinicSettings) validate() error {
	if strings.TrimSpace(s.ClinicName) == "" {
		return apperrors.NewValidation("clinic_name must not be empty")
	}
	if s.Email != "" {
		if _, err := valueobject.NewEmail(s.Email); err != nil {
			return err
		}
	}
	if s.Phone != "" {
		if _, err := valueobject.NewPhoneNumber(s.Phone); err != nil {
			return err
		}
	}
	return nil
}

type ClinicSettingsPatch struct {
	ClinicName *string
	Address    *string
	Phone      *string
	Email      *string
}

func (s *ClinicSettings) Update(patch ClinicSettingsPatch) error {
	if patch.ClinicName != nil {
		s.ClinicName = *patch.ClinicName
	}
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if err := s.validate(); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (s *ClinicSettings) EnableMaintenanceMode() {
	s.MaintenanceMode = true
	s.UpdatedAt = time.Now()
}

func (s *ClinicSettings) DisableMaintenanceMode() {
	s.MaintenanceMode = false
	s.UpdatedAt = time.Now()
}
