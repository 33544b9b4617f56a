package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ApproveAccountCommand struct {
	AccountID uint
	AdminID   uint
}

// ApproveAccountUseCase flips the approval status to approved. Verification
// state is untouched; an unverified account can be approved and still has to
// verify before logging in.
type ApproveAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewApproveAccountUseCase(accountRepo account.Repository, logger logger.Interface) *ApproveAccountUseCase {
	return &ApproveAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ApproveAccountUseCase) Execute(ctx context.Context, cmd ApproveAccountCommand) error {
	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return errors.NewInternalError("Failed to approve account")
	}
	if acct == nil {
		return errors.NewNotFoundError("Account not found")
	}
	if acct.ApprovalStatus() == account.ApprovalApproved {
		return errors.NewConflictError("Account is already approved")
	}

	acct.Approve()
	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist approval", "error", err, "account_id", acct.ID())
		return errors.NewInternalError("Failed to approve account")
	}

	uc.logger.Infow("account approved",
		"account_id", acct.ID(),
		"admin_id", cmd.AdminID)
	return nil
}
