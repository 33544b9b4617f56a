package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type RequestLoginOTPCommand struct {
	Email string
}

// RequestLoginOTPUseCase sends a login passcode to a fully gated account.
// Unlike login, the blocking reason is specific: a passcode only makes sense
// for an account that could actually complete the login.
type RequestLoginOTPUseCase struct {
	accountRepo account.Repository
	otpService  OTPService
	logger      logger.Interface
}

func NewRequestLoginOTPUseCase(
	accountRepo account.Repository,
	otpService OTPService,
	logger logger.Interface,
) *RequestLoginOTPUseCase {
	return &RequestLoginOTPUseCase{
		accountRepo: accountRepo,
		otpService:  otpService,
		logger:      logger,
	}
}

func (uc *RequestLoginOTPUseCase) Execute(ctx context.Context, cmd RequestLoginOTPCommand) error {
	acct, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account for login otp", "error", err)
		return errors.NewInternalError("Failed to send code")
	}
	if acct == nil {
		return errors.NewInvalidCredentialsError()
	}

	switch acct.LifecycleState() {
	case account.StateDeactivated:
		return errors.NewStateGateError("Account is deactivated")
	case account.StatePendingVerification:
		return errors.NewStateGateError("Email not verified")
	case account.StateRejected:
		return errors.NewStateGateError("Application was rejected")
	case account.StatePendingApproval:
		return errors.NewStateGateError("Account is pending approval")
	}

	return uc.otpService.Issue(ctx, acct.ID(), acct.Email(),
		acct.Profile().DisplayName(), account.OTPPurposeLogin)
}
