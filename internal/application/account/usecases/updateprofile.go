package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type UpdateProfileCommand struct {
	AccountID uint
	Profile   account.Profile
}

type UpdateProfileResult struct {
	ProfileComplete bool
	NextStep        string
}

// UpdateProfileUseCase replaces the profile fields and, when the role's
// required fields are all present, marks the signup flow complete.
type UpdateProfileUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(accountRepo account.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return nil, errors.NewInternalError("Failed to update profile")
	}
	if acct == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}

	acct.UpdateProfile(cmd.Profile)
	if acct.ProfileStep() == account.StepProfile && acct.IsProfileComplete() {
		acct.CompleteProfile()
	}

	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist profile", "error", err, "account_id", acct.ID())
		return nil, errors.NewInternalError("Failed to update profile")
	}

	return &UpdateProfileResult{
		ProfileComplete: acct.IsProfileComplete(),
		NextStep:        acct.NextStep(),
	}, nil
}
