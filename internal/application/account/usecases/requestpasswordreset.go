package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase sends a reset passcode. The response never
// reveals whether the email is registered; an unknown address is a silent
// success.
type RequestPasswordResetUseCase struct {
	accountRepo account.Repository
	otpService  OTPService
	logger      logger.Interface
}

func NewRequestPasswordResetUseCase(
	accountRepo account.Repository,
	otpService OTPService,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		accountRepo: accountRepo,
		otpService:  otpService,
		logger:      logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	acct, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account for reset", "error", err)
		return errors.NewInternalError("Failed to send code")
	}
	if acct == nil {
		uc.logger.Debugw("password reset requested for unknown email",
			"email", utils.MaskEmail(cmd.Email))
		return nil
	}
	if !acct.IsActive() {
		return nil
	}

	err = uc.otpService.Issue(ctx, acct.ID(), acct.Email(),
		acct.Profile().DisplayName(), account.OTPPurposePasswordReset)
	if err != nil && errors.IsRateLimitError(err) {
		// Surface rate limits so legitimate users understand the wait.
		return err
	}
	if err != nil {
		uc.logger.Errorw("failed to issue reset code", "error", err, "account_id", acct.ID())
	}
	return nil
}
