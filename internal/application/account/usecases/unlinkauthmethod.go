package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type UnlinkAuthMethodCommand struct {
	AccountID  uint
	Method     account.Method
	ProviderID *string
}

// UnlinkAuthMethodUseCase deactivates a credential channel. The last active
// method cannot be removed; that would lock the account out entirely.
type UnlinkAuthMethodUseCase struct {
	authMethodRepo account.AuthMethodRepository
	logger         logger.Interface
}

func NewUnlinkAuthMethodUseCase(authMethodRepo account.AuthMethodRepository, logger logger.Interface) *UnlinkAuthMethodUseCase {
	return &UnlinkAuthMethodUseCase{
		authMethodRepo: authMethodRepo,
		logger:         logger,
	}
}

func (uc *UnlinkAuthMethodUseCase) Execute(ctx context.Context, cmd UnlinkAuthMethodCommand) error {
	if !cmd.Method.IsValid() {
		return errors.NewValidationError("Unknown auth method")
	}

	methods, err := uc.authMethodRepo.ListActiveByAccount(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to list auth methods", "error", err, "account_id", cmd.AccountID)
		return errors.NewInternalError("Failed to unlink auth method")
	}

	var target *account.AuthMethod
	for _, m := range methods {
		if m.Method != cmd.Method {
			continue
		}
		if cmd.ProviderID != nil && (m.ProviderID == nil || *m.ProviderID != *cmd.ProviderID) {
			continue
		}
		target = m
		break
	}
	if target == nil {
		return errors.NewNotFoundError("Auth method not found")
	}
	if len(methods) == 1 {
		return errors.NewConflictError("Cannot unlink the only remaining auth method")
	}

	if err := uc.authMethodRepo.Deactivate(ctx, cmd.AccountID, cmd.Method, cmd.ProviderID); err != nil {
		uc.logger.Errorw("failed to deactivate auth method", "error", err, "account_id", cmd.AccountID)
		return errors.NewInternalError("Failed to unlink auth method")
	}

	// If the unlinked method was primary, promote the oldest survivor so the
	// account always has exactly one primary method.
	if target.IsPrimary {
		for _, m := range methods {
			if m.ID == target.ID {
				continue
			}
			if err := uc.authMethodRepo.SetPrimary(ctx, cmd.AccountID, m.Method, m.ProviderID); err != nil {
				uc.logger.Warnw("failed to promote replacement primary method", "error", err)
			}
			break
		}
	}

	uc.logger.Infow("auth method unlinked",
		"account_id", cmd.AccountID,
		"method", cmd.Method)
	return nil
}
