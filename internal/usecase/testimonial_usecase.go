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

type TestimonialUsecase interface {
	Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TestimonialResponse, error)
	GetAll(ctx context.Context, patientCategory string) (*dto.TestimonialListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	testimonialRepo repository.TestimonialRepository
	audit           service.AuditService
}

func NewTestimonialUsecase(db *gorm.DB, log *logrus.Logger, testimonialRepo repository.TestimonialRepository, audit service.AuditService) TestimonialUsecase {
	return &testimonialUsecase{
		db:              db,
		log:             log,
		testimonialRepo: testimonialRepo,
		audit:           audit,
	}
}

func (u *testimonialUsecase) Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	testimonial, err := entity.NewTestimonial(uuid.New(), entity.NewTestimonialParams{
		Name:            req.Name,
		Testimonial:     req.Testimonial,
		PhotoURL:        req.PhotoURL,
		PatientCategory: req.PatientCategory,
		Rate:            req.Rate,
	})
	if err != nil {
		return nil, err
	}

	if err := u.testimonialRepo.Create(u.db, testimonial); err != nil {
		u.log.Warnf("Failed to create testimonial: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionTestimonialCreate, "testimonial", testimonial.ID.String(), converter.TestimonialToResponse(testimonial))

	return converter.TestimonialToResponse(testimonial), nil
}

func (u *testimonialUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.TestimonialResponse, error) {
	testimonial, err := u.testimonialRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find testimonial: %+v", err)
		return nil, err
	}
	if testimonial == nil {
		return nil, apperrors.NewNotFound("Testimonial", id.String())
	}

	return converter.TestimonialToResponse(testimonial), nil
}

func (u *testimonialUsecase) GetAll(ctx context.Context, patientCategory string) (*dto.TestimonialListResponse, error) {
	var (
		testimonials []entity.Testimonial
		err          error
	)

	if patientCategory == "" {
		testimonials, err = u.testimonialRepo.FindAll(u.db)
	} else {
		testimonials, err = u.testimonialRepo.FindByPatientCategory(u.db, patientCategory)
	}
	if err != nil {
		u.log.Warnf("Failed to find testimonials: %+v", err)
		return nil, err
	}

	return converter.TestimonialsToListResponse(testimonials), nil
}

func (u *testimonialUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error) {
	testimonial, err := u.testimonialRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find testimonial: %+v", err)
		return nil, err
	}
	if testimonial == nil {
		return nil, apperrors.NewNotFound("Testimonial", id.String())
	}

	oldValue := converter.TestimonialToResponse(testimonial)

	if err := testimonial.Update(entity.TestimonialPatch{
		Name:            req.Name,
		Testimonial:     req.Testimonial,
		PhotoURL:        req.PhotoURL,
		PatientCategory: req.PatientCategory,
		Rate:            req.Rate,
	}); err != nil {
		return nil, err
	}

	if err := u.testimonialRepo.Update(u.db, testimonial); err != nil {
		u.log.Warnf("Failed to update testimonial: %+v", err)
		return nil, err
	}

	newValue := converter.TestimonialToResponse(testimonial)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionTestimonialUpdate, "testimonial", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *testimonialUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	testimonial, err := u.testimonialRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find testimonial: %+v", err)
		return err
	}
	if testimonial == nil {
		return apperrors.NewNotFound("Testimonial", id.String())
	}

	if err := u.testimonialRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete testimonial: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionTestimonialDelete, "testimonial", id.String(), converter.TestimonialToResponse(testimonial))

	return nil
}
