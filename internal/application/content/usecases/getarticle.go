package usecases

import (
	"context"

	"seedfund/internal/domain/content"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/services/markdown"
)

type GetArticleCommand struct {
	Slug string
	// IncludeDrafts lets authors and admins preview unpublished articles.
	IncludeDrafts bool
}

type GetArticleResult struct {
	Article *content.Article
	// BodyHTML is the sanitized rendering of the markdown source.
	BodyHTML string
}

// GetArticleUseCase loads one article and renders its body to sanitized HTML.
type GetArticleUseCase struct {
	articleRepo content.Repository
	renderer    markdown.Service
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo content.Repository,
	renderer markdown.Service,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, cmd GetArticleCommand) (*GetArticleResult, error) {
	article, err := uc.articleRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to load article", "error", err)
		return nil, errors.NewInternalError("Failed to load article")
	}
	if article == nil || (!article.Published && !cmd.IncludeDrafts) {
		return nil, errors.NewNotFoundError("Article not found")
	}

	html, err := uc.renderer.ToHTMLSanitized(article.Body)
	if err != nil {
		uc.logger.Errorw("failed to render article body", "error", err, "article_id", article.ID)
		return nil, errors.NewInternalError("Failed to load article")
	}

	return &GetArticleResult{
		Article:  article,
		BodyHTML: html,
	}, nil
}
