package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePromoRepo struct {
	promos map[uuid.UUID]entity.Promo
}

func newFakePromoRepo() *fakePromoRepo {
	return &fakePromoRepo{promos: make(map[uuid.UUID]entity.Promo)}
}

func (r *fakePromoRepo) Create(db *gorm.DB, promo *entity.Promo) error {
	r.promos[promo.ID] = *promo
	return nil
}

func (r *fakePromoRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Promo, error) {
	promo, ok := r.promos[id]
	if !ok {
		return nil, nil
	}
	return &promo, nil
}

func (r *fakePromoRepo) FindAll(db *gorm.DB) ([]entity.Promo, error) {
	out := make([]entity.Promo, 0, len(r.promos))
	for _, promo := range r.promos {
		out = append(out, promo)
	}
	return out, nil
}

func (r *fakePromoRepo) FindByStatus(db *gorm.DB, status entity.PromoStatus) ([]entity.Promo, error) {
	var out []entity.Promo
	for _, promo := range r.promos {
		if promo.Status == status {
			out = append(out, promo)
		}
	}
	return out, nil
}

func (r *fakePromoRepo) Update(db *gorm.DB, promo *entity.Promo) error {
	r.promos[promo.ID] = *promo
	return nil
}

func (r *fakePromoRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	delete(r.promos, id)
	return nil
}

func (r *fakePromoRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.promos[id]
	return ok, nil
}

func TestPromoUsecaseCreateParsesDates(t *testing.T) {
	uc := NewPromoUsecase(nil, testLogger(), newFakePromoRepo(), &recordingAudit{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreatePromoRequest{
		Title:       "New Year checkup",
		Description: "Discounted package",
		StartDate:   "2026-01-01",
		EndDate:     "2026-01-31T23:59:59Z",
	})
	require.NoError(t, err)
	require.NotNil(t, created.StartDate)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, 2026, created.StartDate.Year())
}

func TestPromoUsecaseCreateRejectsBadDate(t *testing.T) {
	uc := NewPromoUsecase(nil, testLogger(), newFakePromoRepo(), &recordingAudit{})

	_, err := uc.Create(context.Background(), &dto.CreatePromoRequest{
		Title:       "Promo",
		Description: "Description",
		StartDate:   "31/01/2026",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPromoUsecaseCreateRejectsInvertedWindow(t *testing.T) {
	uc := NewPromoUsecase(nil, testLogger(), newFakePromoRepo(), &recordingAudit{})

	_, err := uc.Create(context.Background(), &dto.CreatePromoRequest{
		Title:       "Promo",
		Description: "Description",
		StartDate:   "2026-02-01",
		EndDate:     "2026-01-01",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPromoUsecaseGetAllActiveOnly(t *testing.T) {
	uc := NewPromoUsecase(nil, testLogger(), newFakePromoRepo(), &recordingAudit{})
	ctx := context.Background()

	_, err := uc.Create(ctx, &dto.CreatePromoRequest{
		Title:       "Evergreen",
		Description: "No window",
	})
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour).Format("2006-01-02T15:04:05Z07:00")
	pastEnd := time.Now().Add(-24 * time.Hour).Format("2006-01-02T15:04:05Z07:00")
	_, err = uc.Create(ctx, &dto.CreatePromoRequest{
		Title:       "Expired",
		Description: "Window closed",
		StartDate:   past,
		EndDate:     pastEnd,
	})
	require.NoError(t, err)

	all, err := uc.GetAll(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	active, err := uc.GetAll(ctx, "", true)
	require.NoError(t, err)
	require.Equal(t, 1, active.Total)
	assert.Equal(t, "Evergreen", active.Promos[0].Title)
	assert.True(t, active.Promos[0].IsCurrentlyActive)
}

func TestPromoUsecaseUpdateStatus(t *testing.T) {
	uc := NewPromoUsecase(nil, testLogger(), newFakePromoRepo(), &recordingAudit{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreatePromoRequest{Title: "Promo", Description: "Description"})
	require.NoError(t, err)
	assert.True(t, created.IsCurrentlyActive)

	inactive := string(entity.PromoStatusInactive)
	updated, err := uc.Update(ctx, created.ID, &dto.UpdatePromoRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, inactive, updated.Status)
	assert.False(t, updated.IsCurrentlyActive)
}
