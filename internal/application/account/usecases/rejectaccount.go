package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type RejectAccountCommand struct {
	AccountID uint
	AdminID   uint
	Reason    string
}

// RejectAccountUseCase flips the approval status to rejected with a reason
// the applicant can act on before resubmitting.
type RejectAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewRejectAccountUseCase(accountRepo account.Repository, logger logger.Interface) *RejectAccountUseCase {
	return &RejectAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *RejectAccountUseCase) Execute(ctx context.Context, cmd RejectAccountCommand) error {
	if cmd.Reason == "" {
		return errors.NewValidationError("Rejection reason is required")
	}

	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return errors.NewInternalError("Failed to reject account")
	}
	if acct == nil {
		return errors.NewNotFoundError("Account not found")
	}

	acct.Reject(cmd.Reason)
	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist rejection", "error", err, "account_id", acct.ID())
		return errors.NewInternalError("Failed to reject account")
	}

	uc.logger.Infow("account rejected",
		"account_id", acct.ID(),
		"admin_id", cmd.AdminID)
	return nil
}
