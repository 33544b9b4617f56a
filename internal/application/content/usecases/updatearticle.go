package usecases

import (
	"context"
	"time"

	"seedfund/internal/domain/content"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type UpdateArticleCommand struct {
	Slug      string
	AccountID uint
	IsAdmin   bool
	Title     *string
	Body      *string
	Publish   *bool
}

type UpdateArticleResult struct {
	Article *content.Article
}

// UpdateArticleUseCase edits an article. Only the author or an admin may
// edit; the slug stays stable across title changes so published links keep
// working.
type UpdateArticleUseCase struct {
	articleRepo content.Repository
	logger      logger.Interface
}

func NewUpdateArticleUseCase(articleRepo content.Repository, logger logger.Interface) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error) {
	if cmd.Title == nil && cmd.Body == nil && cmd.Publish == nil {
		return nil, errors.NewValidationError("Nothing to update")
	}

	article, err := uc.articleRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to load article", "error", err)
		return nil, errors.NewInternalError("Failed to update article")
	}
	if article == nil {
		return nil, errors.NewNotFoundError("Article not found")
	}
	if article.AuthorID != cmd.AccountID && !cmd.IsAdmin {
		return nil, errors.NewStateGateError("Only the author can edit this article")
	}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, errors.NewValidationError("Title cannot be empty")
		}
		article.Title = *cmd.Title
	}
	if cmd.Body != nil {
		article.Body = *cmd.Body
	}
	if cmd.Publish != nil {
		article.Published = *cmd.Publish
	}
	article.UpdatedAt = time.Now().UTC()

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to persist article", "error", err, "article_id", article.ID)
		return nil, errors.NewInternalError("Failed to update article")
	}

	uc.logger.Infow("article updated", "article_id", article.ID, "slug", article.Slug)

	return &UpdateArticleResult{Article: article}, nil
}
