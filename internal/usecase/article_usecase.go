package usecase

import (
	"context"

	"clinic-cms-backend/internal/converter"
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/internal/domain/repository"
	"clinic-cms-backend/internal/service"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ArticleUsecase interface {
	Create(ctx context.Context, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error)
	GetAll(ctx context.Context, status string) (*dto.ArticleListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateArticleRequest) (*dto.ArticleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	articleRepo repository.ArticleRepository
	audit       service.AuditService
}

func NewArticleUsecase(db *gorm.DB, log *logrus.Logger, articleRepo repository.ArticleRepository, audit service.AuditService) ArticleUsecase {
	return &articleUsecase{
		db:          db,
		log:         log,
		articleRepo: articleRepo,
		audit:       audit,
	}
}

func (u *articleUsecase) Create(ctx context.Context, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if req.Slug != "" {
		existing, err := u.articleRepo.FindBySlug(u.db, req.Slug)
		if err != nil {
			u.log.Warnf("Failed to look up article slug: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflict("article with slug %s already exists", req.Slug)
		}
	}

	article, err := entity.NewArticle(uuid.New(), entity.NewArticleParams{
		Title:    req.Title,
		Content:  req.Content,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
		Author:   req.Author,
		Tags:     req.Tags,
	})
	if err != nil {
		return nil, err
	}

	if err := u.articleRepo.Create(u.db, article); err != nil {
		u.log.Warnf("Failed to create article: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.db, actorFromContext(ctx), entity.AuditActionArticleCreate, "article", article.ID.String(), converter.ArticleToResponse(article))

	return converter.ArticleToResponse(article), nil
}

func (u *articleUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	article, err := u.articleRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find article: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, apperrors.NewNotFound("Article", id.String())
	}

	return converter.ArticleToResponse(article), nil
}

func (u *articleUsecase) GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	article, err := u.articleRepo.FindBySlug(u.db, slug)
	if err != nil {
		u.log.Warnf("Failed to find article by slug: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, apperrors.NewNotFound("Article", slug)
	}

	return converter.ArticleToResponse(article), nil
}

func (u *articleUsecase) GetAll(ctx context.Context, status string) (*dto.ArticleListResponse, error) {
	var (
		articles []entity.Article
		err      error
	)

	switch status {
	case "":
		articles, err = u.articleRepo.FindAll(u.db)
	case string(entity.ArticleStatusDraft), string(entity.ArticleStatusPublished), string(entity.ArticleStatusArchived):
		articles, err = u.articleRepo.FindByStatus(u.db, entity.ArticleStatus(status))
	default:
		return nil, apperrors.NewValidation("status must be one of: draft, published, archived")
	}
	if err != nil {
		u.log.Warnf("Failed to find articles: %+v", err)
		return nil, err
	}

	return converter.ArticlesToListResponse(articles), nil
}

func (u *articleUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := u.articleRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find article: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, apperrors.NewNotFound("Article", id.String())
	}

	if req.Slug != nil && *req.Slug != "" && *req.Slug != article.Slug {
		existing, err := u.articleRepo.FindBySlug(u.db, *req.Slug)
		if err != nil {
			u.log.Warnf("Failed to look up article slug: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.NewConflict("article with slug %s already exists", *req.Slug)
		}
	}

	oldValue := converter.ArticleToResponse(article)

	if err := article.Update(entity.ArticlePatch{
		Title:    req.Title,
		Content:  req.Content,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
		Author:   req.Author,
		Tags:     req.Tags,
	}); err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != string(article.Status) {
		switch *req.Status {
		case string(entity.ArticleStatusPublished):
			article.Publish()
		case string(entity.ArticleStatusDraft):
			article.Draft()
		case string(entity.ArticleStatusArchived):
			article.Archive()
		}
	}

	if err := u.articleRepo.Update(u.db, article); err != nil {
		u.log.Warnf("Failed to update article: %+v", err)
		return nil, err
	}

	newValue := converter.ArticleToResponse(article)
	u.audit.LogUpdate(ctx, u.db, actorFromContext(ctx), entity.AuditActionArticleUpdate, "article", id.String(), oldValue, newValue)

	return newValue, nil
}

func (u *articleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	article, err := u.articleRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find article: %+v", err)
		return err
	}
	if article == nil {
		return apperrors.NewNotFound("Article", id.String())
	}

	if err := u.articleRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete article: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, u.db, actorFromContext(ctx), entity.AuditActionArticleDelete, "article", id.String(), converter.ArticleToResponse(article))

	return nil
}
