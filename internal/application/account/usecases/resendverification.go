package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ResendVerificationCommand struct {
	Email string
}

// ResendVerificationUseCase re-issues the email verification code for an
// account that has not verified yet.
type ResendVerificationUseCase struct {
	accountRepo account.Repository
	otpService  OTPService
	logger      logger.Interface
}

func NewResendVerificationUseCase(
	accountRepo account.Repository,
	otpService OTPService,
	logger logger.Interface,
) *ResendVerificationUseCase {
	return &ResendVerificationUseCase{
		accountRepo: accountRepo,
		otpService:  otpService,
		logger:      logger,
	}
}

func (uc *ResendVerificationUseCase) Execute(ctx context.Context, cmd ResendVerificationCommand) error {
	acct, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account for resend", "error", err)
		return errors.NewInternalError("Failed to send code")
	}
	if acct == nil {
		return errors.NewInvalidCredentialsError()
	}
	if acct.IsVerified() {
		return errors.NewConflictError("Email is already verified")
	}

	return uc.otpService.Issue(ctx, acct.ID(), acct.Email(),
		acct.Profile().DisplayName(), account.OTPPurposeEmailVerification)
}
