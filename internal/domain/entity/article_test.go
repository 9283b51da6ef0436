package entity

import (
	"testing"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArticle(t *testing.T) *Article {
	t.Helper()
	article, err := NewArticle(uuid.New(), NewArticleParams{
		Title:   "Managing hypertension",
		Content: "Long form content",
		Slug:    "managing-hypertension",
		Tags:    []string{"health", "heart"},
	})
	require.NoError(t, err)
	return article
}

func TestNewArticleStartsAsDraft(t *testing.T) {
	article := newTestArticle(t)

	assert.Equal(t, ArticleStatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
	assert.False(t, article.IsPublished())
}

func TestNewArticleValidation(t *testing.T) {
	_, err := NewArticle(uuid.New(), NewArticleParams{Title: "", Content: "body"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = NewArticle(uuid.New(), NewArticleParams{Title: "title", Content: "  "})
	assert.True(t, apperrors.IsValidation(err))
}

func TestArticlePublishSetsTimestamp(t *testing.T) {
	article := newTestArticle(t)

	article.Publish()

	assert.Equal(t, ArticleStatusPublished, article.Status)
	require.NotNil(t, article.PublishedAt)
	assert.True(t, article.IsPublished())
}

func TestArticleDraftClearsTimestamp(t *testing.T) {
	article := newTestArticle(t)
	article.Publish()

	article.Draft()

	assert.Equal(t, ArticleStatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
}

func TestArticleArchiveKeepsTimestamp(t *testing.T) {
	article := newTestArticle(t)
	article.Publish()
	publishedAt := article.PublishedAt

	article.Archive()

	assert.Equal(t, ArticleStatusArchived, article.Status)
	assert.Equal(t, publishedAt, article.PublishedAt)
	assert.False(t, article.IsPublished())
}
