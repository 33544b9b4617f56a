package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ChangePasswordCommand struct {
	AccountID       uint
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase replaces the password for an account that already has
// one. Accounts without a password hash cannot use this flow at all; they go
// through the reset flow instead.
type ChangePasswordUseCase struct {
	accountRepo  account.Repository
	hasher       PasswordHasher
	emailService EmailService
	logger       logger.Interface
}

func NewChangePasswordUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		accountRepo:  accountRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("New password is too short")
	}

	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return errors.NewInternalError("Failed to change password")
	}
	if acct == nil {
		return errors.NewNotFoundError("Account not found")
	}

	if !acct.HasPassword() {
		return errors.NewPasswordNotSetError()
	}
	if err := uc.hasher.Verify(cmd.CurrentPassword, *acct.PasswordHash()); err != nil {
		return errors.NewInvalidCredentialsError()
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return errors.NewInternalError("Failed to change password")
	}
	if err := acct.SetPasswordHash(hash); err != nil {
		return errors.NewInternalError("Failed to change password")
	}

	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist password change", "error", err, "account_id", acct.ID())
		return errors.NewInternalError("Failed to change password")
	}

	if err := uc.emailService.SendPasswordChangedEmail(acct.Email(), acct.Profile().DisplayName()); err != nil {
		uc.logger.Warnw("failed to send password changed notification", "error", err)
	}

	uc.logger.Infow("password changed", "account_id", acct.ID())
	return nil
}
