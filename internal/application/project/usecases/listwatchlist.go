package usecases

import (
	"context"

	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ListWatchlistCommand struct {
	AccountID uint
	Page      int
	PageSize  int
}

type ListWatchlistResult struct {
	Items []*project.WatchlistItem
	Total int64
}

type ListWatchlistUseCase struct {
	investmentRepo project.InvestmentRepository
	logger         logger.Interface
}

func NewListWatchlistUseCase(investmentRepo project.InvestmentRepository, logger logger.Interface) *ListWatchlistUseCase {
	return &ListWatchlistUseCase{
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

func (uc *ListWatchlistUseCase) Execute(ctx context.Context, cmd ListWatchlistCommand) (*ListWatchlistResult, error) {
	items, total, err := uc.investmentRepo.ListWatchlist(ctx, cmd.AccountID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list watchlist", "error", err, "account_id", cmd.AccountID)
		return nil, errors.NewInternalError("Failed to list watchlist")
	}

	return &ListWatchlistResult{Items: items, Total: total}, nil
}
