package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

// Article represents a blog/news article with a draft-publish-archive lifecycle
type Article struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Content     string        `gorm:"type:text;not null" json:"content"`
	Slug        string        `gorm:"type:varchar(255);index" json:"slug,omitempty"`
	Excerpt     string        `gorm:"type:text" json:"excerpt,omitempty"`
	ImageURL    string        `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Author      string        `gorm:"type:varchar(255)" json:"author,omitempty"`
	Tags        StringList    `gorm:"type:jsonb" json:"tags,omitempty"`
	Status      ArticleStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	PublishedAt *time.Time    `gorm:"type:timestamptz" json:"published_at,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

type NewArticleParams struct {
	Title    string
	Content  string
	Slug     string
	Excerpt  string
	ImageURL string
	Author   string
	Tags     []string
}

// NewArticle creates an article in draft state.
func NewArticle(id uuid.UUID, p NewArticleParams) (*Article, error) {
	now := time.Now()
	article := &Article{
		ID:        id,
		Title:     p.Title,
		Content:   p.Content,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		ImageURL:  p.ImageURL,
		Author:    p.Author,
		Tags:      StringList(p.Tags),
		Status:    ArticleStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := article.validate(); err != nil {
		return nil, err
	}
	return article, nil
}

func (a *Article) validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return apperrors.NewValidation("title must not be empty")
	}
	if strings.TrimSpace(a.Content) == "" {
		return apperrors.NewValidation("content must not be empty")
	}
	return nil
}

type ArticlePatch struct {
	Title    *string
	Content  *string
	Slug     *string
	Excerpt  *string
	ImageURL *string
	Author   *string
	Tags     *[]string
}

func (a *Article) Update(patch ArticlePatch) error {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Slug != nil {
		a.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.ImageURL != nil {
		a.ImageURL = *patch.ImageURL
	}
	if patch.Author != nil {
		a.Author = *patch.Author
	}
	if patch.Tags != nil {
		a.Tags = StringList(*patch.Tags)
	}
	if err := a.validate(); err != nil {
		return err
	}
	a.UpdatedAt = time.Now()
	return nil
}

// Publish sets the published timestamp to now.
func (a *Article) Publish() {
	now := time.Now()
	a.Status = ArticleStatusPublished
	a.PublishedAt = &now
	a.UpdatedAt = now
}

// Draft pulls the article back and clears the published timestamp.
func (a *Article) Draft() {
	a.Status = ArticleStatusDraft
	a.PublishedAt = nil
	a.UpdatedAt = time.Now()
}

// Archive keeps the published timestamp untouched.
func (a *Article) Archive() {
	a.Status = ArticleStatusArchived
	a.UpdatedAt = time.Now()
}

func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
