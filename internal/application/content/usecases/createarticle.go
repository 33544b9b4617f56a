package usecases

import (
	"context"

	"seedfund/internal/domain/content"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type CreateArticleCommand struct {
	AuthorID uint
	Kind     content.Kind
	Title    string
	Body     string
	Publish  bool
}

type CreateArticleResult struct {
	Article *content.Article
}

// CreateArticleUseCase stores a markdown article. The body is kept as source;
// rendering happens on read.
type CreateArticleUseCase struct {
	articleRepo content.Repository
	logger      logger.Interface
}

func NewCreateArticleUseCase(articleRepo content.Repository, logger logger.Interface) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error) {
	article, err := content.NewArticle(cmd.AuthorID, cmd.Kind, cmd.Title, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	article.Published = cmd.Publish

	if err := uc.articleRepo.Create(ctx, article); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("An article with this title already exists")
		}
		uc.logger.Errorw("failed to create article", "error", err)
		return nil, errors.NewInternalError("Failed to create article")
	}

	uc.logger.Infow("article created",
		"article_id", article.ID,
		"slug", article.Slug,
		"kind", article.Kind)

	return &CreateArticleResult{Article: article}, nil
}
