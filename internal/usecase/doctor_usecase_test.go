package usecase

import (
	"context"
	"testing"

	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]entity.Doctor)}
}

func (r *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		out = append(out, doctor)
	}
	return out, nil
}

func (r *fakeDoctorRepo) FindByStatus(db *gorm.DB, status entity.DoctorStatus) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, doctor := range r.doctors {
		if doctor.Status == status {
			out = append(out, doctor)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.doctors[id]
	return ok, nil
}

func TestDoctorUsecaseCreateAndGet(t *testing.T) {
	uc := NewDoctorUsecase(nil, testLogger(), newFakeDoctorRepo(), &recordingAudit{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateDoctorRequest{
		FullName:   "Dr. Siti Rahma",
		Specialist: "Cardiology",
		Schedule: dto.WeeklyScheduleDTO{
			"monday": {Start: "08:00", End: "16:00", Available: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.DoctorStatusActive), created.Status)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Siti Rahma", got.FullName)
	assert.True(t, got.Schedule["monday"].Available)
}

func TestDoctorUsecaseGetAllStatusFilter(t *testing.T) {
	uc := NewDoctorUsecase(nil, testLogger(), newFakeDoctorRepo(), &recordingAudit{})
	ctx := context.Background()

	first, err := uc.Create(ctx, &dto.CreateDoctorRequest{FullName: "Dr. A", Specialist: "Cardiology"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &dto.CreateDoctorRequest{FullName: "Dr. B", Specialist: "Neurology"})
	require.NoError(t, err)

	inactive := string(entity.DoctorStatusInactive)
	_, err = uc.Update(ctx, first.ID, &dto.UpdateDoctorRequest{Status: &inactive})
	require.NoError(t, err)

	active, err := uc.GetAll(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, 1, active.Total)

	all, err := uc.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	_, err = uc.GetAll(ctx, "retired")
	assert.True(t, apperrors.IsValidation(err))
}

func TestDoctorUsecaseUpdatePatchesFields(t *testing.T) {
	uc := NewDoctorUsecase(nil, testLogger(), newFakeDoctorRepo(), &recordingAudit{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateDoctorRequest{FullName: "Dr. A", Specialist: "Cardiology"})
	require.NoError(t, err)

	room := "204B"
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateDoctorRequest{ClinicRoom: &room})
	require.NoError(t, err)
	assert.Equal(t, room, updated.ClinicRoom)
	assert.Equal(t, "Dr. A", updated.FullName)
	assert.Equal(t, "Cardiology", updated.Specialist)
}

func TestDoctorUsecaseDelete(t *testing.T) {
	audit := &recordingAudit{}
	uc := NewDoctorUsecase(nil, testLogger(), newFakeDoctorRepo(), audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateDoctorRequest{FullName: "Dr. A", Specialist: "Cardiology"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.True(t, apperrors.IsNotFound(uc.Delete(ctx, created.ID)))
	assert.Contains(t, audit.actions, entity.AuditActionDoctorDelete)
}
