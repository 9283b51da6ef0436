package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func ClinicSettingsToResponse(settings *entity.ClinicSettings) *dto.ClinicSettingsResponse {
	if settings == nil {
		return nil
	}

	return &dto.ClinicSettingsResponse{
		ID:              settings.ID,
		ClinicName:      settings.ClinicName,
		Address:         settings.Address,
		Phone:           settings.Phone,
		Email:           settings.Email,
		MaintenanceMode: settings.MaintenanceMode,
		CreatedAt:       settings.CreatedAt,
		UpdatedAt:       settings.UpdatedAt,
	}
}
