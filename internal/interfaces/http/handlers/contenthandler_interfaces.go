package handlers

import (
	"context"

	"seedfund/internal/application/content/usecases"
)

// Use case interfaces for ContentHandler - enables unit testing with mocks.

type createArticleUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateArticleCommand) (*usecases.CreateArticleResult, error)
}

type updateArticleUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateArticleCommand) (*usecases.UpdateArticleResult, error)
}

type getArticleUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetArticleCommand) (*usecases.GetArticleResult, error)
}

type listArticlesUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListArticlesCommand) (*usecases.ListArticlesResult, error)
}
