package usecases

import (
	"context"

	"seedfund/internal/domain/content"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ListArticlesCommand struct {
	Kind          content.Kind
	PublishedOnly bool
	Page          int
	PageSize      int
}

type ListArticlesResult struct {
	Articles []*content.Article
	Total    int64
}

type ListArticlesUseCase struct {
	articleRepo content.Repository
	logger      logger.Interface
}

func NewListArticlesUseCase(articleRepo content.Repository, logger logger.Interface) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, cmd ListArticlesCommand) (*ListArticlesResult, error) {
	articles, total, err := uc.articleRepo.List(ctx, cmd.Kind, cmd.PublishedOnly, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, errors.NewInternalError("Failed to list articles")
	}

	return &ListArticlesResult{Articles: articles, Total: total}, nil
}
