package repository

import (
	"clinic-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(db *gorm.DB, article *entity.Article) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Article, error)
	FindAll(db *gorm.DB) ([]entity.Article, error)
	FindByStatus(db *gorm.DB, status entity.ArticleStatus) ([]entity.Article, error)
	FindBySlug(db *gorm.DB, slug string) (*entity.Article, error)
	Update(db *gorm.DB, article *entity.Article) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
}
