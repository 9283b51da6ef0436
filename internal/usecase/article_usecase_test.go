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

type fakeArticleRepo struct {
	articles map[uuid.UUID]entity.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uuid.UUID]entity.Article)}
}

func (r *fakeArticleRepo) Create(db *gorm.DB, article *entity.Article) error {
	r.articles[article.ID] = *article
	return nil
}

func (r *fakeArticleRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	return &article, nil
}

func (r *fakeArticleRepo) FindAll(db *gorm.DB) ([]entity.Article, error) {
	out := make([]entity.Article, 0, len(r.articles))
	for _, article := range r.articles {
		out = append(out, article)
	}
	return out, nil
}

func (r *fakeArticleRepo) FindByStatus(db *gorm.DB, status entity.ArticleStatus) ([]entity.Article, error) {
	var out []entity.Article
	for _, article := range r.articles {
		if article.Status == status {
			out = append(out, article)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) FindBySlug(db *gorm.DB, slug string) (*entity.Article, error) {
	for _, article := range r.articles {
		if article.Slug == slug {
			found := article
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) Update(db *gorm.DB, article *entity.Article) error {
	r.articles[article.ID] = *article
	return nil
}

func (r *fakeArticleRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

func TestArticleUsecaseCreateDuplicateSlug(t *testing.T) {
	repo := newFakeArticleRepo()
	uc := NewArticleUsecase(nil, testLogger(), repo, &recordingAudit{})
	ctx := context.Background()

	_, err := uc.Create(ctx, &dto.CreateArticleRequest{
		Title:   "First",
		Content: "body",
		Slug:    "healthy-living",
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, &dto.CreateArticleRequest{
		Title:   "Second",
		Content: "body",
		Slug:    "healthy-living",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestArticleUsecaseUpdateSlugConflict(t *testing.T) {
	repo := newFakeArticleRepo()
	uc := NewArticleUsecase(nil, testLogger(), repo, &recordingAudit{})
	ctx := context.Background()

	first, err := uc.Create(ctx, &dto.CreateArticleRequest{Title: "First", Content: "body", Slug: "first"})
	require.NoError(t, err)
	second, err := uc.Create(ctx, &dto.CreateArticleRequest{Title: "Second", Content: "body", Slug: "second"})
	require.NoError(t, err)

	slug := first.Slug
	_, err = uc.Update(ctx, second.ID, &dto.UpdateArticleRequest{Slug: &slug})
	assert.True(t, apperrors.IsConflict(err))

	// keeping your own slug is not a conflict
	own := second.Slug
	_, err = uc.Update(ctx, second.ID, &dto.UpdateArticleRequest{Slug: &own})
	assert.NoError(t, err)
}

func TestArticleUsecaseStatusTransitions(t *testing.T) {
	repo := newFakeArticleRepo()
	uc := NewArticleUsecase(nil, testLogger(), repo, &recordingAudit{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateArticleRequest{Title: "Post", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ArticleStatusDraft), created.Status)
	assert.Nil(t, created.PublishedAt)

	published := string(entity.ArticleStatusPublished)
	resp, err := uc.Update(ctx, created.ID, &dto.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, published, resp.Status)
	require.NotNil(t, resp.PublishedAt)
	publishedAt := *resp.PublishedAt

	archived := string(entity.ArticleStatusArchived)
	resp, err = uc.Update(ctx, created.ID, &dto.UpdateArticleRequest{Status: &archived})
	require.NoError(t, err)
	assert.Equal(t, archived, resp.Status)
	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, publishedAt, *resp.PublishedAt)

	draft := string(entity.ArticleStatusDraft)
	resp, err = uc.Update(ctx, created.ID, &dto.UpdateArticleRequest{Status: &draft})
	require.NoError(t, err)
	assert.Nil(t, resp.PublishedAt)
}

func TestArticleUsecaseGetAllFilters(t *testing.T) {
	repo := newFakeArticleRepo()
	uc := NewArticleUsecase(nil, testLogger(), repo, &recordingAudit{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateArticleRequest{Title: "One", Content: "body"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &dto.CreateArticleRequest{Title: "Two", Content: "body"})
	require.NoError(t, err)

	published := string(entity.ArticleStatusPublished)
	_, err = uc.Update(ctx, created.ID, &dto.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)

	list, err := uc.GetAll(ctx, "published")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = uc.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	_, err = uc.GetAll(ctx, "bogus")
	assert.True(t, apperrors.IsValidation(err))
}
