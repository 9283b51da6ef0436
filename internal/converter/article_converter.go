package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func ArticleToResponse(article *entity.Article) *dto.ArticleResponse {
	if article == nil {
		return nil
	}

	return &dto.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Content:     article.Content,
		Slug:        article.Slug,
		Excerpt:     article.Excerpt,
		ImageURL:    article.ImageURL,
		Author:      article.Author,
		Tags:        []string(article.Tags),
		Status:      string(article.Status),
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

func ArticlesToListResponse(articles []entity.Article) *dto.ArticleListResponse {
	responses := make([]dto.ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = *ArticleToResponse(&articles[i])
	}
	return &dto.ArticleListResponse{
		Articles: responses,
		Total:    len(responses),
	}
}
