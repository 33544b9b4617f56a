package usecases

import (
	"context"
	stderrors "errors"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ResubmitApplicationCommand struct {
	AccountID uint
	Profile   account.Profile
}

type ResubmitApplicationResult struct {
	NextStep string
}

// ResubmitApplicationUseCase lets a rejected applicant overwrite their
// profile and re-enter the approval queue.
type ResubmitApplicationUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewResubmitApplicationUseCase(accountRepo account.Repository, logger logger.Interface) *ResubmitApplicationUseCase {
	return &ResubmitApplicationUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ResubmitApplicationUseCase) Execute(ctx context.Context, cmd ResubmitApplicationCommand) (*ResubmitApplicationResult, error) {
	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return nil, errors.NewInternalError("Failed to resubmit application")
	}
	if acct == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}

	if err := acct.Resubmit(cmd.Profile); err != nil {
		if stderrors.Is(err, account.ErrNotInRejectedState) {
			return nil, errors.NewStateGateError("Only rejected applications can be resubmitted")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist resubmission", "error", err, "account_id", acct.ID())
		return nil, errors.NewInternalError("Failed to resubmit application")
	}

	uc.logger.Infow("application resubmitted", "account_id", acct.ID())

	return &ResubmitApplicationResult{NextStep: acct.NextStep()}, nil
}
