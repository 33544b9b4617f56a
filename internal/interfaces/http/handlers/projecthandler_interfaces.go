package handlers

import (
	"context"

	"seedfund/internal/application/project/usecases"
)

// Use case interfaces for ProjectHandler - enables unit testing with mocks.

type createProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProjectCommand) (*usecases.CreateProjectResult, error)
}

type publishProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.PublishProjectCommand) error
}

type listProjectsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListProjectsCommand) (*usecases.ListProjectsResult, error)
}

type getProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetProjectCommand) (*usecases.GetProjectResult, error)
}

type investUseCase interface {
	Execute(ctx context.Context, cmd usecases.InvestCommand) (*usecases.InvestResult, error)
}

type rateProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.RateProjectCommand) (*usecases.RateProjectResult, error)
}

type toggleWatchlistUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleWatchlistCommand) (*usecases.ToggleWatchlistResult, error)
}

type listWatchlistUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListWatchlistCommand) (*usecases.ListWatchlistResult, error)
}

type listInvestmentsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListInvestmentsCommand) (*usecases.ListInvestmentsResult, error)
}
