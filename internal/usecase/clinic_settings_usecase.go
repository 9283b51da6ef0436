package usecase

import (
	"context"

	"clinic-cms-backend/internal/converter"
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/internal/domain/repository"
	"clinic-cms-backend/internal/service"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClinicSettingsUsecase interface {
	GetCurrent(ctx context.Context) (*dto.ClinicSettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateClinicSettingsRequest) (*dto.ClinicSettingsResponse, error)
}

type clinicSettingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.ClinicSettingsRepository
	audit        service.AuditService
}

func NewClinicSettingsUsecase(db *gorm.DB, log *logrus.Logger, settingsRepo repository.ClinicSettingsRepository, audit service.AuditService) ClinicSettingsUsecase {
	return &clinicSettingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		audit:        audit,
	}
}

func (u *clinicSettingsUsecase) GetCurrent(ctx context.Context) (*dto.ClinicSettingsResponse, error) {
	settings, err := u.settingsRepo.FindCurrent(u.db)
	if err != nil {
		u.log.Warnf("Failed to find clinic settings: %+v", err)
		return nil, err
	}
	if settings == nil {
		return nil, apperrors.NewNotFound("Clinic settings", entity.ClinicSettingsID.String())
	}

	return converter.ClinicSettingsToResponse(settings), nil
}

// Update upserts the singleton row: the first PUT creates it and requires
// clinic_name, later PUTs patch it.
func (u *clinicSettingsUsecase) Update(ctx context.Context, req *dto.UpdateClinicSettingsRequest) (*dto.ClinicSettingsResponse, error) {
	settings, err := u.settingsRepo.FindCurrent(u.db)
	if err != nil {
		u.log.Warnf("Failed to find clinic settings: %+v", err)
		return nil, err
	}

	var oldValue *dto.ClinicSettingsResponse

	if settings == nil {
		if req.ClinicName == nil {
			return nil, apperrors.NewValidation("clinic_name is required to initialize settings")
		}
		params := entity.NewClinicSettingsParams{ClinicName: *req.ClinicName}
		if req.Address != nil {
			params.Address = *req.Address
		}
		if req.Phone != nil {
			params.Phone = *req.Phone
		}
		if req.Email != nil {
			params.Email = *req.Email
		}
		if settings, err = entity.NewClinicSettings(params); err != nil {
			return nil, err
		}
	} else {
		oldValue = converter.ClinicSettingsToResponse(settings)
		if err := settings.Update(entity.ClinicSettingsPatch{
			ClinicName: req.ClinicName,
			Address:    req.Address,
			Phone:      req.Phone,
			Email:      req.Email,
		}); err != nil {
			return nil, err
		}
	}

	if req.MaintenanceMode != nil {
		if *req.MaintenanceMode {
			settings.EnableMaintenanceMode()
		} else {
			settings.DisableMaintenanceMode()
		}
	}

	if err := u.settingsRepo.Save(u.db, settings); err != nil {
		u.log.Warnf("Failed to save clinic settings: %+v", err)
		return nil, err
	}

	newValue := converter.ClinicSettingsToResponse(settings)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionClinicSettingsUpdate, "clinic_settings", settings.ID.String(), oldValue, newValue)

	return newValue, nil
}
