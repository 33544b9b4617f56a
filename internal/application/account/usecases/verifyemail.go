package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type VerifyEmailCommand struct {
	Email string
	Code  string
}

type VerifyEmailResult struct {
	AccountID uint
	NextStep  string
}

// VerifyEmailUseCase redeems a verification code and marks the account
// verified.
type VerifyEmailUseCase struct {
	accountRepo account.Repository
	otpService  OTPService
	logger      logger.Interface
}

func NewVerifyEmailUseCase(
	accountRepo account.Repository,
	otpService OTPService,
	logger logger.Interface,
) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		accountRepo: accountRepo,
		otpService:  otpService,
		logger:      logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) (*VerifyEmailResult, error) {
	if _, err := uc.otpService.Verify(ctx, cmd.Email, cmd.Code, account.OTPPurposeEmailVerification); err != nil {
		return nil, err
	}

	acct, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to load account after code verification", "error", err)
		return nil, errors.NewInternalError("Verification failed")
	}
	if acct == nil {
		// The code was valid but no account exists for the email; return the
		// same opaque failure as a bad code.
		return nil, errors.NewInvalidOrExpiredCodeError()
	}

	acct.MarkVerified()
	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist verification", "error", err, "account_id", acct.ID())
		return nil, errors.NewInternalError("Verification failed")
	}

	uc.logger.Infow("email verified",
		"account_id", acct.ID(),
		"email", utils.MaskEmail(acct.Email()))

	return &VerifyEmailResult{
		AccountID: acct.ID(),
		NextStep:  acct.NextStep(),
	}, nil
}
