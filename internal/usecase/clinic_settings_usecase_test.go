package usecase

import (
	"context"
	"testing"

	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeClinicSettingsRepo struct {
	settings *entity.ClinicSettings
}

func (r *fakeClinicSettingsRepo) FindCurrent(db *gorm.DB) (*entity.ClinicSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeClinicSettingsRepo) Save(db *gorm.DB, settings *entity.ClinicSettings) error {
	copied := *settings
	r.settings = &copied
	return nil
}

func TestClinicSettingsUsecaseGetCurrentEmpty(t *testing.T) {
	uc := NewClinicSettingsUsecase(nil, testLogger(), &fakeClinicSettingsRepo{}, &recordingAudit{})

	_, err := uc.GetCurrent(context.Background())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClinicSettingsUsecaseFirstUpdateCreates(t *testing.T) {
	repo := &fakeClinicSettingsRepo{}
	uc := NewClinicSettingsUsecase(nil, testLogger(), repo, &recordingAudit{})
	ctx := context.Background()

	name := "Sehat Clinic"
	address := "Jl. Merdeka 1"
	created, err := uc.Update(ctx, &dto.UpdateClinicSettingsRequest{
		ClinicName: &name,
		Address:    &address,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClinicSettingsID, created.ID)
	assert.Equal(t, name, created.ClinicName)
	assert.False(t, created.MaintenanceMode)

	got, err := uc.GetCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestClinicSettingsUsecaseFirstUpdateRequiresName(t *testing.T) {
	uc := NewClinicSettingsUsecase(nil, testLogger(), &fakeClinicSettingsRepo{}, &recordingAudit{})

	on := true
	_, err := uc.Update(context.Background(), &dto.UpdateClinicSettingsRequest{MaintenanceMode: &on})
	assert.True(t, apperrors.IsValidation(err))
}

func TestClinicSettingsUsecaseMaintenanceToggle(t *testing.T) {
	repo := &fakeClinicSettingsRepo{}
	uc := NewClinicSettingsUsecase(nil, testLogger(), repo, &recordingAudit{})
	ctx := context.Background()

	name := "Sehat Clinic"
	_, err := uc.Update(ctx, &dto.UpdateClinicSettingsRequest{ClinicName: &name})
	require.NoError(t, err)

	on := true
	updated, err := uc.Update(ctx, &dto.UpdateClinicSettingsRequest{MaintenanceMode: &on})
	require.NoError(t, err)
	assert.True(t, updated.MaintenanceMode)
	assert.Equal(t, name, updated.ClinicName)

	off := false
	updated, err = uc.Update(ctx, &dto.UpdateClinicSettingsRequest{MaintenanceMode: &off})
	require.NoError(t, err)
	assert.False(t, updated.MaintenanceMode)
}
