package usecase

import (
	"context"

	"clinic-cms-backend/internal/converter"
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/internal/domain/repository"
	"clinic-cms-backend/internal/service"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PolyClinicUsecase interface {
	Create(ctx context.Context, req *dto.CreatePolyClinicRequest) (*dto.PolyClinicResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PolyClinicResponse, error)
	GetAll(ctx context.Context, status string) (*dto.PolyClinicListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePolyClinicRequest) (*dto.PolyClinicResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddService(ctx context.Context, id uuid.UUID, req *dto.PolyClinicServiceRequest) (*dto.PolyClinicResponse, error)
	RemoveService(ctx context.Context, id uuid.UUID, serviceName string) (*dto.PolyClinicResponse, error)
}

type polyClinicUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	polyClinicRepo repository.PolyClinicRepository
	audit          service.AuditService
}

func NewPolyClinicUsecase(db *gorm.DB, log *logrus.Logger, polyClinicRepo repository.PolyClinicRepository, audit service.AuditService) PolyClinicUsecase {
	return &polyClinicUsecase{
		db:             db,
		log:            log,
		polyClinicRepo: polyClinicRepo,
		audit:          audit,
	}
}

func (u *polyClinicUsecase) Create(ctx context.Context, req *dto.CreatePolyClinicRequest) (*dto.PolyClinicResponse, error) {
	polyclinic, err := entity.NewPolyClinic(uuid.New(), entity.NewPolyClinicParams{
		Name:         req.Name,
		Description:  req.Description,
		Head:         req.Head,
		Location:     req.Location,
		Phone:        req.Phone,
		Email:        req.Email,
		WorkingHours: converter.WeeklyScheduleFromDTO(req.WorkingHours),
		Capacity:     req.Capacity,
		Services:     req.Services,
	})
	if err != nil {
		return nil, err
	}

	if err := u.polyClinicRepo.Create(u.db, polyclinic); err != nil {
		u.log.Warnf("Failed to create polyclinic: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPolyClinicCreate, "polyclinic", polyclinic.ID.String(), converter.PolyClinicToResponse(polyclinic))

	return converter.PolyClinicToResponse(polyclinic), nil
}

func (u *polyClinicUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PolyClinicResponse, error) {
	polyclinic, err := u.polyClinicRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic: %+v", err)
		return nil, err
	}
	if polyclinic == nil {
		return nil, apperrors.NewNotFound("PolyClinic", id.String())
	}

	return converter.PolyClinicToResponse(polyclinic), nil
}

func (u *polyClinicUsecase) GetAll(ctx context.Context, status string) (*dto.PolyClinicListResponse, error) {
	var (
		polyclinics []entity.PolyClinic
		err         error
	)

	switch status {
	case "":
		polyclinics, err = u.polyClinicRepo.FindAll(u.db)
	case string(entity.PolyClinicStatusActive), string(entity.PolyClinicStatusInactive):
		polyclinics, err = u.polyClinicRepo.FindByStatus(u.db, entity.PolyClinicStatus(status))
	default:
		return nil, apperrors.NewValidation("status must be one of: active, inactive")
	}
	if err != nil {
		u.log.Warnf("Failed to find polyclinics: %+v", err)
		return nil, err
	}

	return converter.PolyClinicsToListResponse(polyclinics), nil
}

func (u *polyClinicUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePolyClinicRequest) (*dto.PolyClinicResponse, error) {
	polyclinic, err := u.polyClinicRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic: %+v", err)
		return nil, err
	}
	if polyclinic == nil {
		return nil, apperrors.NewNotFound("PolyClinic", id.String())
	}

	oldValue := converter.PolyClinicToResponse(polyclinic)

	patch := entity.PolyClinicPatch{
		Name:        req.Name,
		Description: req.Description,
		Head:        req.Head,
		Location:    req.Location,
		Phone:       req.Phone,
		Email:       req.Email,
		Capacity:    req.Capacity,
		Services:    req.Services,
	}
	if req.WorkingHours != nil {
		hours := converter.WeeklyScheduleFromDTO(*req.WorkingHours)
		patch.WorkingHours = &hours
	}

	if err := polyclinic.Update(patch); err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case string(entity.PolyClinicStatusActive):
			polyclinic.Activate()
		case string(entity.PolyClinicStatusInactive):
			polyclinic.Deactivate()
		}
	}

	if err := u.polyClinicRepo.Update(u.db, polyclinic); err != nil {
		u.log.Warnf("Failed to update polyclinic: %+v", err)
		return nil, err
	}

	newValue := converter.PolyClinicToResponse(polyclinic)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPolyClinicUpdate, "polyclinic", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *polyClinicUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	polyclinic, err := u.polyClinicRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic: %+v", err)
		return err
	}
	if polyclinic == nil {
		return apperrors.NewNotFound("PolyClinic", id.String())
	}

	if err := u.polyClinicRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete polyclinic: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionPolyClinicDelete, "polyclinic", id.String(), converter.PolyClinicToResponse(polyclinic))

	return nil
}

func (u *polyClinicUsecase) AddService(ctx context.Context, id uuid.UUID, req *dto.PolyClinicServiceRequest) (*dto.PolyClinicResponse, error) {
	polyclinic, err := u.polyClinicRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic: %+v", err)
		return nil, err
	}
	if polyclinic == nil {
		return nil, apperrors.NewNotFound("PolyClinic", id.String())
	}

	oldValue := converter.PolyClinicToResponse(polyclinic)

	if err := polyclinic.AddService(req.Name); err != nil {
		return nil, err
	}

	if err := u.polyClinicRepo.Update(u.db, polyclinic); err != nil {
		u.log.Warnf("Failed to update polyclinic: %+v", err)
		return nil, err
	}

	newValue := converter.PolyClinicToResponse(polyclinic)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPolyClinicUpdate, "polyclinic", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *polyClinicUsecase) RemoveService(ctx context.Context, id uuid.UUID, serviceName string) (*dto.PolyClinicResponse, error) {
	polyclinic, err := u.polyClinicRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic: %+v", err)
		return nil, err
	}
	if polyclinic == nil {
		return nil, apperrors.NewNotFound("PolyClinic", id.String())
	}

	oldValue := converter.PolyClinicToResponse(polyclinic)

	if err := polyclinic.RemoveService(serviceName); err != nil {
		return nil, err
	}

	if err := u.polyClinicRepo.Update(u.db, polyclinic); err != nil {
		u.log.Warnf("Failed to update polyclinic: %+v", err)
		return nil, err
	}

	newValue := converter.PolyClinicToResponse(polyclinic)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPolyClinicUpdate, "polyclinic", id.String(), oldValue, newValue)

	return newValue, nil
}
