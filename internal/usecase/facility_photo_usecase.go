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

type FacilityPhotoUsecase interface {
	Create(ctx context.Context, req *dto.CreateFacilityPhotoRequest) (*dto.FacilityPhotoResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.FacilityPhotoResponse, error)
	GetAll(ctx context.Context) (*dto.FacilityPhotoListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFacilityPhotoRequest) (*dto.FacilityPhotoResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type facilityPhotoUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	photoRepo repository.FacilityPhotoRepository
	audit     service.AuditService
}

func NewFacilityPhotoUsecase(db *gorm.DB, log *logrus.Logger, photoRepo repository.FacilityPhotoRepository, audit service.AuditService) FacilityPhotoUsecase {
	return &facilityPhotoUsecase{
		db:        db,
		log:       log,
		photoRepo: photoRepo,
		audit:     audit,
	}
}

func (u *facilityPhotoUsecase) Create(ctx context.Context, req *dto.CreateFacilityPhotoRequest) (*dto.FacilityPhotoResponse, error) {
	photo, err := entity.NewFacilityPhoto(uuid.New(), entity.NewFacilityPhotoParams{
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := u.photoRepo.Create(u.db, photo); err != nil {
		u.log.Warnf("Failed to create facility photo: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionFacilityPhotoCreate, "facility_photo", photo.ID.String(), converter.FacilityPhotoToResponse(photo))

	return converter.FacilityPhotoToResponse(photo), nil
}

func (u *facilityPhotoUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.FacilityPhotoResponse, error) {
	photo, err := u.photoRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find facility photo: %+v", err)
		return nil, err
	}
	if photo == nil {
		return nil, apperrors.NewNotFound("Facility photo", id.String())
	}

	return converter.FacilityPhotoToResponse(photo), nil
}

func (u *facilityPhotoUsecase) GetAll(ctx context.Context) (*dto.FacilityPhotoListResponse, error) {
	photos, err := u.photoRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find facility photos: %+v", err)
		return nil, err
	}

	return converter.FacilityPhotosToListResponse(photos), nil
}

func (u *facilityPhotoUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFacilityPhotoRequest) (*dto.FacilityPhotoResponse, error) {
	photo, err := u.photoRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find facility photo: %+v", err)
		return nil, err
	}
	if photo == nil {
		return nil, apperrors.NewNotFound("Facility photo", id.String())
	}

	oldValue := converter.FacilityPhotoToResponse(photo)

	if err := photo.Update(entity.FacilityPhotoPatch{
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		Description: req.Description,
	}); err != nil {
		return nil, err
	}

	if err := u.photoRepo.Update(u.db, photo); err != nil {
		u.log.Warnf("Failed to update facility photo: %+v", err)
		return nil, err
	}

	newValue := converter.FacilityPhotoToResponse(photo)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionFacilityPhotoUpdate, "facility_photo", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *facilityPhotoUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	photo, err := u.photoRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find facility photo: %+v", err)
		return err
	}
	if photo == nil {
		return apperrors.NewNotFound("Facility photo", id.String())
	}

	if err := u.photoRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete facility photo: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionFacilityPhotoDelete, "facility_photo", id.String(), converter.FacilityPhotoToResponse(photo))

	return nil
}
