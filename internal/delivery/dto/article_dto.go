package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	ImageURL string   `json:"image_url" validate:"omitempty,url"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title    *string   `json:"title" validate:"omitempty"`
	Content  *string   `json:"content" validate:"omitempty"`
	Slug     *string   `json:"slug"`
	Excerpt  *string   `json:"excerpt"`
	ImageURL *string   `json:"image_url" validate:"omitempty,url"`
	Author   *string   `json:"author"`
	Tags     *[]string `json:"tags"`
	Status   *string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type ArticleResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Slug        string     `json:"slug,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Author      string     `json:"author,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}
