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

type PartnerUsecase interface {
	Create(ctx context.Context, req *dto.CreatePartnerRequest) (*dto.PartnerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PartnerResponse, error)
	GetAll(ctx context.Context) (*dto.PartnerListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePartnerRequest) (*dto.PartnerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type partnerUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	partnerRepo repository.PartnerRepository
	audit       service.AuditService
}

func NewPartnerUsecase(db *gorm.DB, log *logrus.Logger, partnerRepo repository.PartnerRepository, audit service.AuditService) PartnerUsecase {
	return &partnerUsecase{
		db:          db,
		log:         log,
		partnerRepo: partnerRepo,
		audit:       audit,
	}
}

func (u *partnerUsecase) Create(ctx context.Context, req *dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := entity.NewPartner(uuid.New(), entity.NewPartnerParams{
		ImageURL: req.ImageURL,
		Name:     req.Name,
		Link:     req.Link,
	})
	if err != nil {
		return nil, err
	}

	if err := u.partnerRepo.Create(u.db, partner); err != nil {
		u.log.Warnf("Failed to create partner: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPartnerCreate, "partner", partner.ID.String(), converter.PartnerToResponse(partner))

	return converter.PartnerToResponse(partner), nil
}

func (u *partnerUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PartnerResponse, error) {
	partner, err := u.partnerRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find partner: %+v", err)
		return nil, err
	}
	if partner == nil {
		return nil, apperrors.NewNotFound("Partner", id.String())
	}

	return converter.PartnerToResponse(partner), nil
}

func (u *partnerUsecase) GetAll(ctx context.Context) (*dto.PartnerListResponse, error) {
	partners, err := u.partnerRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find partners: %+v", err)
		return nil, err
	}

	return converter.PartnersToListResponse(partners), nil
}

func (u *partnerUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := u.partnerRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find partner: %+v", err)
		return nil, err
	}
	if partner == nil {
		return nil, apperrors.NewNotFound("Partner", id.String())
	}

	oldValue := converter.PartnerToResponse(partner)

	if err := partner.Update(entity.PartnerPatch{
		ImageURL: req.ImageURL,
		Name:     req.Name,
		Link:     req.Link,
	}); err != nil {
		return nil, err
	}

	if err := u.partnerRepo.Update(u.db, partner); err != nil {
		u.log.Warnf("Failed to update partner: %+v", err)
		return nil, err
	}

	newValue := converter.PartnerToResponse(partner)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPartnerUpdate, "partner", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *partnerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	partner, err := u.partnerRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find partner: %+v", err)
		return err
	}
	if partner == nil {
		return apperrors.NewNotFound("Partner", id.String())
	}

	if err := u.partnerRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete partner: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionPartnerDelete, "partner", id.String(), converter.PartnerToResponse(partner))

	return nil
}
