package usecases

import (
	"context"

	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ListInvestmentsCommand struct {
	AccountID uint
	Page      int
	PageSize  int
}

type ListInvestmentsResult struct {
	Investments []*project.Investment
	Total       int64
}

type ListInvestmentsUseCase struct {
	investmentRepo project.InvestmentRepository
	logger         logger.Interface
}

func NewListInvestmentsUseCase(investmentRepo project.InvestmentRepository, logger logger.Interface) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, cmd ListInvestmentsCommand) (*ListInvestmentsResult, error) {
	investments, total, err := uc.investmentRepo.ListInvestmentsByAccount(ctx, cmd.AccountID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list investments", "error", err, "account_id", cmd.AccountID)
		return nil, errors.NewInternalError("Failed to list investments")
	}

	return &ListInvestmentsResult{Investments: investments, Total: total}, nil
}
