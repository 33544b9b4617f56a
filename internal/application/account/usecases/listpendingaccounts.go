package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ListPendingAccountsCommand struct {
	Page     int
	PageSize int
}

type ListPendingAccountsResult struct {
	Accounts []*account.Account
	Total    int64
}

// ListPendingAccountsUseCase returns the admin approval queue, oldest first.
type ListPendingAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListPendingAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListPendingAccountsUseCase {
	return &ListPendingAccountsUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ListPendingAccountsUseCase) Execute(ctx context.Context, cmd ListPendingAccountsCommand) (*ListPendingAccountsResult, error) {
	accounts, total, err := uc.accountRepo.ListByApprovalStatus(ctx, account.ApprovalPending, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list pending accounts", "error", err)
		return nil, errors.NewInternalError("Failed to list pending accounts")
	}

	return &ListPendingAccountsResult{
		Accounts: accounts,
		Total:    total,
	}, nil
}
