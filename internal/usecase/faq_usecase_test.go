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

type fakeFAQRepo struct {
	faqs map[uuid.UUID]entity.FAQ
}

func newFakeFAQRepo() *fakeFAQRepo {
	return &fakeFAQRepo{faqs: make(map[uuid.UUID]entity.FAQ)}
}

func (r *fakeFAQRepo) Create(db *gorm.DB, faq *entity.FAQ) error {
	r.faqs[faq.ID] = *faq
	return nil
}

func (r *fakeFAQRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FAQ, error) {
	faq, ok := r.faqs[id]
	if !ok {
		return nil, nil
	}
	return &faq, nil
}

func (r *fakeFAQRepo) FindAll(db *gorm.DB) ([]entity.FAQ, error) {
	out := make([]entity.FAQ, 0, len(r.faqs))
	for _, faq := range r.faqs {
		out = append(out, faq)
	}
	return out, nil
}

func (r *fakeFAQRepo) Update(db *gorm.DB, faq *entity.FAQ) error {
	r.faqs[faq.ID] = *faq
	return nil
}

func (r *fakeFAQRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	delete(r.faqs, id)
	return nil
}

func (r *fakeFAQRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.faqs[id]
	return ok, nil
}

func TestFAQUsecaseCRUD(t *testing.T) {
	repo := newFakeFAQRepo()
	audit := &recordingAudit{}
	uc := NewFAQUsecase(nil, testLogger(), repo, audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateFAQRequest{
		Question: "Do you accept BPJS?",
		Answer:   "Yes, for all polyclinics.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Do you accept BPJS?", created.Question)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	answer := "Yes, BPJS and most private insurers."
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateFAQRequest{Answer: &answer})
	require.NoError(t, err)
	assert.Equal(t, answer, updated.Answer)
	assert.Equal(t, created.Question, updated.Question)

	list, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.Get(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	assert.Equal(t, []string{
		entity.AuditActionFAQCreate,
		entity.AuditActionFAQUpdate,
		entity.AuditActionFAQDelete,
	}, audit.actions)

	// the delete entry carries the last state of the row
	require.Len(t, audit.deletedEntities, 1)
	deleted, ok := audit.deletedEntities[0].(*dto.FAQResponse)
	require.True(t, ok)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, answer, deleted.Answer)
}

func TestFAQUsecaseNotFound(t *testing.T) {
	uc := NewFAQUsecase(nil, testLogger(), newFakeFAQRepo(), &recordingAudit{})
	ctx := context.Background()
	id := uuid.New()

	_, err := uc.Get(ctx, id)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "FAQ with id "+id.String()+" not found")

	answer := "answer"
	_, err = uc.Update(ctx, id, &dto.UpdateFAQRequest{Answer: &answer})
	assert.True(t, apperrors.IsNotFound(err))

	err = uc.Delete(ctx, id)
	assert.True(t, apperrors.IsNotFound(err))
}
