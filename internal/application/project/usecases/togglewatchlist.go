package usecases

import (
	"context"
	"time"

	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ToggleWatchlistCommand struct {
	ProjectID uint
	AccountID uint
}

type ToggleWatchlistResult struct {
	Watching bool
}

// ToggleWatchlistUseCase adds the project to the account's watchlist, or
// removes it when already present.
type ToggleWatchlistUseCase struct {
	projectRepo    project.Repository
	investmentRepo project.InvestmentRepository
	logger         logger.Interface
}

func NewToggleWatchlistUseCase(
	projectRepo project.Repository,
	investmentRepo project.InvestmentRepository,
	logger logger.Interface,
) *ToggleWatchlistUseCase {
	return &ToggleWatchlistUseCase{
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

func (uc *ToggleWatchlistUseCase) Execute(ctx context.Context, cmd ToggleWatchlistCommand) (*ToggleWatchlistResult, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err)
		return nil, errors.NewInternalError("Failed to update watchlist")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Project not found")
	}

	existing, err := uc.investmentRepo.GetWatchlistItem(ctx, p.ID, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load watchlist item", "error", err)
		return nil, errors.NewInternalError("Failed to update watchlist")
	}

	if existing != nil {
		if err := uc.investmentRepo.RemoveWatchlistItem(ctx, p.ID, cmd.AccountID); err != nil {
			uc.logger.Errorw("failed to remove watchlist item", "error", err)
			return nil, errors.NewInternalError("Failed to update watchlist")
		}
		return &ToggleWatchlistResult{Watching: false}, nil
	}

	item := &project.WatchlistItem{
		ProjectID: p.ID,
		AccountID: cmd.AccountID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.investmentRepo.AddWatchlistItem(ctx, item); err != nil {
		// A concurrent add is fine; the item is on the list either way.
		if errors.IsDuplicateError(err) {
			return &ToggleWatchlistResult{Watching: true}, nil
		}
		uc.logger.Errorw("failed to add watchlist item", "error", err)
		return nil, errors.NewInternalError("Failed to update watchlist")
	}

	return &ToggleWatchlistResult{Watching: true}, nil
}
