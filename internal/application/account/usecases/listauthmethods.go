package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ListAuthMethodsCommand struct {
	AccountID uint
}

// ListAuthMethodsUseCase returns the active credential channels of an
// account, the set a login UI should offer.
type ListAuthMethodsUseCase struct {
	authMethodRepo account.AuthMethodRepository
	logger         logger.Interface
}

func NewListAuthMethodsUseCase(authMethodRepo account.AuthMethodRepository, logger logger.Interface) *ListAuthMethodsUseCase {
	return &ListAuthMethodsUseCase{
		authMethodRepo: authMethodRepo,
		logger:         logger,
	}
}

func (uc *ListAuthMethodsUseCase) Execute(ctx context.Context, cmd ListAuthMethodsCommand) ([]*account.AuthMethod, error) {
	methods, err := uc.authMethodRepo.ListActiveByAccount(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to list auth methods", "error", err, "account_id", cmd.AccountID)
		return nil, errors.NewInternalError("Failed to list auth methods")
	}
	return methods, nil
}
