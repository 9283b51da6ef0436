package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateClinicSettingsRequest struct {
	ClinicName      *string `json:"clinic_name" validate:"omitempty"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	MaintenanceMode *bool   `json:"maintenance_mode"`
}

type ClinicSettingsResponse struct {
	ID              uuid.UUID `json:"id"`
	ClinicName      string    `json:"clinic_name"`
	Address         string    `json:"address,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
