package services

import (
	"context"
	"time"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

// OTPSender delivers a passcode out of band. Implemented by the SMTP service.
type OTPSender interface {
	SendOTPEmail(to, displayName, code string, purpose account.OTPPurpose) error
}

// OTPEngineConfig carries the tunable windows of the passcode lifecycle.
type OTPEngineConfig struct {
	TTL          time.Duration
	ResendWindow time.Duration
}

// OTPEngine issues and verifies one-time passcodes. Codes are persisted before
// delivery so a lost email never leaves the flow in an inconsistent state, and
// verification is at-most-once through a conditional update on the used flag.
type OTPEngine struct {
	otpRepo account.OTPRepository
	sender  OTPSender
	cfg     OTPEngineConfig
	logger  logger.Interface
}

func NewOTPEngine(
	otpRepo account.OTPRepository,
	sender OTPSender,
	cfg OTPEngineConfig,
	logger logger.Interface,
) *OTPEngine {
	if cfg.TTL <= 0 {
		cfg.TTL = account.DefaultOTPTTL
	}
	if cfg.ResendWindow <= 0 {
		cfg.ResendWindow = 2 * time.Minute
	}
	return &OTPEngine{
		otpRepo: otpRepo,
		sender:  sender,
		cfg:     cfg,
		logger:  logger,
	}
}

// Issue creates, persists and delivers a fresh code for (email, purpose).
// A second issue inside the resend window is refused with a rate limit error
// regardless of whether the earlier code was verified.
func (e *OTPEngine) Issue(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error {
	email = account.NormalizeEmail(email)

	since := time.Now().UTC().Add(-e.cfg.ResendWindow)
	count, err := e.otpRepo.CountCreatedSince(ctx, email, purpose, since)
	if err != nil {
		e.logger.Errorw("failed to check otp resend window", "error", err)
		return errors.NewInternalError("Failed to issue code")
	}
	if count > 0 {
		return errors.NewRateLimitError()
	}

	code, err := account.NewOTPCode(accountID, email, purpose, e.cfg.TTL)
	if err != nil {
		e.logger.Errorw("failed to generate otp code", "error", err)
		return errors.NewInternalError("Failed to issue code")
	}

	if err := e.otpRepo.Create(ctx, code); err != nil {
		e.logger.Errorw("failed to persist otp code", "error", err)
		return errors.NewInternalError("Failed to issue code")
	}

	// The code is committed at this point; a delivery failure is surfaced
	// distinctly so the caller knows the email transport is the problem.
	if err := e.sender.SendOTPEmail(email, displayName, code.Code, purpose); err != nil {
		e.logger.Errorw("failed to deliver otp code",
			"error", err,
			"email", utils.MaskEmail(email),
			"purpose", purpose,
		)
		return errors.NewExternalServiceError("Failed to send code", "email delivery failed")
	}

	e.logger.Infow("otp code issued",
		"email", utils.MaskEmail(email),
		"purpose", purpose,
	)
	return nil
}

// Verify consumes the newest unused, unexpired record matching
// (email, code, purpose). An older code issued before a resend therefore
// still works until it expires. When nothing matches, one attempt is burned
// on the newest outstanding code so guessing stays bounded. All failure modes
// return the same invalid-or-expired error.
func (e *OTPEngine) Verify(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
	email = account.NormalizeEmail(email)
	now := time.Now().UTC()

	match, err := e.otpRepo.GetLatestMatching(ctx, email, submitted, purpose)
	if err != nil {
		e.logger.Errorw("failed to look up otp code", "error", err)
		return nil, errors.NewInternalError("Failed to verify code")
	}
	if match == nil || !match.IsVerifiable(now) {
		e.burnAttempt(ctx, email, purpose)
		return nil, errors.NewInvalidOrExpiredCodeError()
	}

	flipped, err := e.otpRepo.MarkUsed(ctx, match.ID)
	if err != nil {
		e.logger.Errorw("failed to mark otp code used", "error", err)
		return nil, errors.NewInternalError("Failed to verify code")
	}
	if !flipped {
		// Lost the race against a concurrent verification of the same code.
		return nil, errors.NewInvalidOrExpiredCodeError()
	}

	return match, nil
}

// burnAttempt increments the attempt counter of the newest outstanding code
// after a failed verification.
func (e *OTPEngine) burnAttempt(ctx context.Context, email string, purpose account.OTPPurpose) {
	latest, err := e.otpRepo.GetLatestOutstanding(ctx, email, purpose)
	if err != nil {
		e.logger.Errorw("failed to load outstanding otp code", "error", err)
		return
	}
	if latest == nil {
		return
	}
	if err := e.otpRepo.IncrementAttempts(ctx, latest.ID); err != nil {
		e.logger.Errorw("failed to increment otp attempts", "error", err)
	}
}
