package usecases

import (
	"context"
	"fmt"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Email       string
	Code        string
	NewPassword string
}

// ResetPasswordUseCase sets a new password after an OTP proof of email
// possession. This is the path by which an OAuth-only account gains a
// password, so the password auth method is created when absent.
type ResetPasswordUseCase struct {
	accountRepo    account.Repository
	authMethodRepo account.AuthMethodRepository
	otpService     OTPService
	hasher         PasswordHasher
	emailService   EmailService
	txManager      TransactionManager
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	accountRepo account.Repository,
	authMethodRepo account.AuthMethodRepository,
	otpService OTPService,
	hasher PasswordHasher,
	emailService EmailService,
	txManager TransactionManager,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		accountRepo:    accountRepo,
		authMethodRepo: authMethodRepo,
		otpService:     otpService,
		hasher:         hasher,
		emailService:   emailService,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("New password is too short")
	}

	if _, err := uc.otpService.Verify(ctx, cmd.Email, cmd.Code, account.OTPPurposePasswordReset); err != nil {
		return err
	}

	acct, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to load account after reset code verification", "error", err)
		return errors.NewInternalError("Failed to reset password")
	}
	if acct == nil {
		return errors.NewInvalidOrExpiredCodeError()
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return errors.NewInternalError("Failed to reset password")
	}
	if err := acct.SetPasswordHash(hash); err != nil {
		return errors.NewInternalError("Failed to reset password")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.accountRepo.Update(txCtx, acct); err != nil {
			return fmt.Errorf("failed to persist password: %w", err)
		}

		// An OAuth-originated account gains password login here.
		existing, err := uc.authMethodRepo.GetByAccountAndMethod(txCtx, acct.ID(), account.MethodPassword, nil)
		if err != nil {
			return fmt.Errorf("failed to check password auth method: %w", err)
		}
		if existing == nil {
			method, err := account.NewAuthMethod(acct.ID(), account.MethodPassword, nil, nil)
			if err != nil {
				return fmt.Errorf("failed to build auth method: %w", err)
			}
			return uc.authMethodRepo.Create(txCtx, method)
		}
		if !existing.IsActive {
			existing.Reactivate()
			return uc.authMethodRepo.Update(txCtx, existing)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("password reset transaction failed", "error", err, "account_id", acct.ID())
		return errors.NewInternalError("Failed to reset password")
	}

	if err := uc.emailService.SendPasswordChangedEmail(acct.Email(), acct.Profile().DisplayName()); err != nil {
		uc.logger.Warnw("failed to send password changed notification", "error", err)
	}

	uc.logger.Infow("password reset", "account_id", acct.ID())
	return nil
}
