package usecase

import (
	"context"
	"time"

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

type PromoUsecase interface {
	Create(ctx context.Context, req *dto.CreatePromoRequest) (*dto.PromoResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PromoResponse, error)
	GetAll(ctx context.Context, status string, activeOnly bool) (*dto.PromoListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePromoRequest) (*dto.PromoResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promoUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	promoRepo repository.PromoRepository
	audit     service.AuditService
}

func NewPromoUsecase(db *gorm.DB, log *logrus.Logger, promoRepo repository.PromoRepository, audit service.AuditService) PromoUsecase {
	return &promoUsecase{
		db:        db,
		log:       log,
		promoRepo: promoRepo,
		audit:     audit,
	}
}

func (u *promoUsecase) Create(ctx context.Context, req *dto.CreatePromoRequest) (*dto.PromoResponse, error) {
	var (
		startDate *time.Time
		endDate   *time.Time
		err       error
	)
	if req.StartDate != "" {
		if startDate, err = converter.ParseDate("start_date", req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != "" {
		if endDate, err = converter.ParseDate("end_date", req.EndDate); err != nil {
			return nil, err
		}
	}

	promo, err := entity.NewPromo(uuid.New(), entity.NewPromoParams{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return nil, err
	}

	if err := u.promoRepo.Create(u.db, promo); err != nil {
		u.log.Warnf("Failed to create promo: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPromoCreate, "promo", promo.ID.String(), converter.PromoToResponse(promo))

	return converter.PromoToResponse(promo), nil
}

func (u *promoUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PromoResponse, error) {
	promo, err := u.promoRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find promo: %+v", err)
		return nil, err
	}
	if promo == nil {
		return nil, apperrors.NewNotFound("Promo", id.String())
	}

	return converter.PromoToResponse(promo), nil
}

func (u *promoUsecase) GetAll(ctx context.Context, status string, activeOnly bool) (*dto.PromoListResponse, error) {
	var (
		promos []entity.Promo
		err    error
	)

	switch status {
	case "":
		promos, err = u.promoRepo.FindAll(u.db)
	case string(entity.PromoStatusActive), string(entity.PromoStatusInactive):
		promos, err = u.promoRepo.FindByStatus(u.db, entity.PromoStatus(status))
	default:
		return nil, apperrors.NewValidation("status must be one of: active, inactive")
	}
	if err != nil {
		u.log.Warnf("Failed to find promos: %+v", err)
		return nil, err
	}

	// active-only filters on the wall clock, so it cannot be a column match
	if activeOnly {
		filtered := promos[:0]
		for i := range promos {
			if promos[i].IsCurrentlyActive() {
				filtered = append(filtered, promos[i])
			}
		}
		promos = filtered
	}

	return converter.PromosToListResponse(promos), nil
}

func (u *promoUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePromoRequest) (*dto.PromoResponse, error) {
	promo, err := u.promoRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find promo: %+v", err)
		return nil, err
	}
	if promo == nil {
		return nil, apperrors.NewNotFound("Promo", id.String())
	}

	oldValue := converter.PromoToResponse(promo)

	patch := entity.PromoPatch{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.StartDate != nil {
		startDate, err := converter.ParseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		patch.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := converter.ParseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		patch.EndDate = endDate
	}

	if err := promo.Update(patch); err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case string(entity.PromoStatusActive):
			promo.Activate()
		case string(entity.PromoStatusInactive):
			promo.Deactivate()
		}
	}

	if err := u.promoRepo.Update(u.db, promo); err != nil {
		u.log.Warnf("Failed to update promo: %+v", err)
		return nil, err
	}

	newValue := converter.PromoToResponse(promo)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionPromoUpdate, "promo", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *promoUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	promo, err := u.promoRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find promo: %+v", err)
		return err
	}
	if promo == nil {
		return apperrors.NewNotFound("Promo", id.String())
	}

	if err := u.promoRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete promo: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionPromoDelete, "promo", id.String(), converter.PromoToResponse(promo))

	return nil
}
