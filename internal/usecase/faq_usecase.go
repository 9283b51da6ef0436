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

type FAQUsecase interface {
	Create(ctx context.Context, req *dto.CreateFAQRequest) (*dto.FAQResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.FAQResponse, error)
	GetAll(ctx context.Context) (*dto.FAQListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFAQRequest) (*dto.FAQResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type faqUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	faqRepo repository.FAQRepository
	audit   service.AuditService
}

func NewFAQUsecase(db *gorm.DB, log *logrus.Logger, faqRepo repository.FAQRepository, audit service.AuditService) FAQUsecase {
	return &faqUsecase{
		db:      db,
		log:     log,
		faqRepo: faqRepo,
		audit:   audit,
	}
}

func (u *faqUsecase) Create(ctx context.Context, req *dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	faq, err := entity.NewFAQ(uuid.New(), req.Question, req.Answer)
	if err != nil {
		return nil, err
	}

	if err := u.faqRepo.Create(u.db, faq); err != nil {
		u.log.Warnf("Failed to create FAQ: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionFAQCreate, "faq", faq.ID.String(), converter.FAQToResponse(faq))

	return converter.FAQToResponse(faq), nil
}

func (u *faqUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.FAQResponse, error) {
	faq, err := u.faqRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find FAQ: %+v", err)
		return nil, err
	}
	if faq == nil {
		return nil, apperrors.NewNotFound("FAQ", id.String())
	}

	return converter.FAQToResponse(faq), nil
}

func (u *faqUsecase) GetAll(ctx context.Context) (*dto.FAQListResponse, error) {
	faqs, err := u.faqRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find FAQs: %+v", err)
		return nil, err
	}

	return converter.FAQsToListResponse(faqs), nil
}

func (u *faqUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFAQRequest) (*dto.FAQResponse, error) {
	faq, err := u.faqRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find FAQ: %+v", err)
		return nil, err
	}
	if faq == nil {
		return nil, apperrors.NewNotFound("FAQ", id.String())
	}

	oldValue := converter.FAQToResponse(faq)

	if err := faq.Update(entity.FAQPatch{
		Question: req.Question,
		Answer:   req.Answer,
	}); err != nil {
		return nil, err
	}

	if err := u.faqRepo.Update(u.db, faq); err != nil {
		u.log.Warnf("Failed to update FAQ: %+v", err)
		return nil, err
	}

	newValue := converter.FAQToResponse(faq)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionFAQUpdate, "faq", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *faqUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	faq, err := u.faqRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find FAQ: %+v", err)
		return err
	}
	if faq == nil {
		return apperrors.NewNotFound("FAQ", id.String())
	}

	if err := u.faqRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete FAQ: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionFAQDelete, "faq", id.String(), converter.FAQToResponse(faq))

	return nil
}
