package usecases

import (
	"context"
	stderrors "errors"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type SetPrimaryAuthMethodCommand struct {
	AccountID  uint
	Method     account.Method
	ProviderID *string
}

// SetPrimaryAuthMethodUseCase promotes one credential channel to primary.
// The clear-then-set runs as one transaction in the repository so there is
// never a window with zero primary methods.
type SetPrimaryAuthMethodUseCase struct {
	authMethodRepo account.AuthMethodRepository
	logger         logger.Interface
}

func NewSetPrimaryAuthMethodUseCase(authMethodRepo account.AuthMethodRepository, logger logger.Interface) *SetPrimaryAuthMethodUseCase {
	return &SetPrimaryAuthMethodUseCase{
		authMethodRepo: authMethodRepo,
		logger:         logger,
	}
}

func (uc *SetPrimaryAuthMethodUseCase) Execute(ctx context.Context, cmd SetPrimaryAuthMethodCommand) error {
	if !cmd.Method.IsValid() {
		return errors.NewValidationError("Unknown auth method")
	}

	err := uc.authMethodRepo.SetPrimary(ctx, cmd.AccountID, cmd.Method, cmd.ProviderID)
	if err != nil {
		if stderrors.Is(err, account.ErrPrimaryMethodTargetMissing) {
			return errors.NewNotFoundError("Auth method not found")
		}
		uc.logger.Errorw("failed to set primary auth method", "error", err, "account_id", cmd.AccountID)
		return errors.NewInternalError("Failed to set primary auth method")
	}

	uc.logger.Infow("primary auth method changed",
		"account_id", cmd.AccountID,
		"method", cmd.Method)
	return nil
}
