package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type articleRepository struct{}

func NewArticleRepository() domainRepo.ArticleRepository {
	return &articleRepository{}
}

func (r *articleRepository) Create(db *gorm.DB, article *entity.Article) error {
	return db.Create(article).Error
}

func (r *articleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Article, error) {
	var article entity.Article
	err := db.Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindAll(db *gorm.DB) ([]entity.Article, error) {
	var articles []entity.Article
	err := db.Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByStatus(db *gorm.DB, status entity.ArticleStatus) ([]entity.Article, error) {
	var articles []entity.Article
	err := db.Where("status = ?", status).Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindBySlug(db *gorm.DB, slug string) (*entity.Article, error) {
	var article entity.Article
	err := db.Where("slug = ?", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(db *gorm.DB, article *entity.Article) error {
	return db.Save(article).Error
}

func (r *articleRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Article{}).Error
}

func (r *articleRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Article{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
