package handlers

import (
	"context"

	"seedfund/internal/application/account/usecases"
)

// Use case interfaces for AdminHandler - enables unit testing with mocks.

type listPendingAccountsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListPendingAccountsCommand) (*usecases.ListPendingAccountsResult, error)
}

type approveAccountUseCase interface {
	Execute(ctx context.Context, cmd usecases.ApproveAccountCommand) error
}

type rejectAccountUseCase interface {
	Execute(ctx context.Context, cmd usecases.RejectAccountCommand) error
}
