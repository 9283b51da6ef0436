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

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context, status string) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	audit      service.AuditService
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, audit service.AuditService) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		audit:      audit,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := entity.NewDoctor(uuid.New(), entity.NewDoctorParams{
		FullName:        req.FullName,
		Specialist:      req.Specialist,
		PhotoURL:        req.PhotoURL,
		Education:       req.Education,
		Experience:      req.Experience,
		Schedule:        converter.WeeklyScheduleFromDTO(req.Schedule),
		STRNumber:       req.STRNumber,
		SIPNumber:       req.SIPNumber,
		Phone:           req.Phone,
		Email:           req.Email,
		Gender:          req.Gender,
		YearsOfPractice: req.YearsOfPractice,
		ClinicRoom:      req.ClinicRoom,
	})
	if err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Create(u.db, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), converter.DoctorToResponse(doctor))

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.NewNotFound("Doctor", id.String())
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context, status string) (*dto.DoctorListResponse, error) {
	var (
		doctors []entity.Doctor
		err     error
	)

	switch status {
	case "":
		doctors, err = u.doctorRepo.FindAll(u.db)
	case string(entity.DoctorStatusActive), string(entity.DoctorStatusInactive):
		doctors, err = u.doctorRepo.FindByStatus(u.db, entity.DoctorStatus(status))
	default:
		return nil, apperrors.NewValidation("status must be one of: active, inactive")
	}
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToListResponse(doctors), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.NewNotFound("Doctor", id.String())
	}

	oldValue := converter.DoctorToResponse(doctor)

	patch := entity.DoctorPatch{
		FullName:        req.FullName,
		Specialist:      req.Specialist,
		PhotoURL:        req.PhotoURL,
		Education:       req.Education,
		Experience:      req.Experience,
		STRNumber:       req.STRNumber,
		SIPNumber:       req.SIPNumber,
		Phone:           req.Phone,
		Email:           req.Email,
		Gender:          req.Gender,
		YearsOfPractice: req.YearsOfPractice,
		ClinicRoom:      req.ClinicRoom,
	}
	if req.Schedule != nil {
		schedule := converter.WeeklyScheduleFromDTO(*req.Schedule)
		patch.Schedule = &schedule
	}

	if err := doctor.Update(patch); err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case string(entity.DoctorStatusActive):
			doctor.Activate()
		case string(entity.DoctorStatusInactive):
			doctor.Deactivate()
		}
	}

	if err := u.doctorRepo.Update(u.db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionDoctorUpdate, "doctor", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return apperrors.NewNotFound("Doctor", id.String())
	}

	if err := u.doctorRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionDoctorDelete, "doctor", id.String(), converter.DoctorToResponse(doctor))

	return nil
}
