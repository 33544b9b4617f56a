package usecases

import (
	"context"
	"fmt"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

const minPasswordLength = 8

type SignupCommand struct {
	Email    string
	Password string
	Role     string
	Profile  account.Profile
}

type SignupResult struct {
	AccountID uint
	Email     string
	NextStep  string
	// CodeResent is true when the email already had an unverified account and
	// a fresh verification code was issued instead of creating a new row.
	CodeResent bool
}

// SignupUseCase registers a password account and starts email verification.
type SignupUseCase struct {
	accountRepo    account.Repository
	authMethodRepo account.AuthMethodRepository
	otpService     OTPService
	hasher         PasswordHasher
	txManager      TransactionManager
	logger         logger.Interface
}

func NewSignupUseCase(
	accountRepo account.Repository,
	authMethodRepo account.AuthMethodRepository,
	otpService OTPService,
	hasher PasswordHasher,
	txManager TransactionManager,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		accountRepo:    accountRepo,
		authMethodRepo: authMethodRepo,
		otpService:     otpService,
		hasher:         hasher,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	role := authorization.ParseRole(cmd.Role)
	if !role.IsSelectable() {
		return nil, errors.NewValidationError("Role must be investor or project_owner")
	}

	existing, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account by email", "error", err)
		return nil, errors.NewInternalError("Signup failed")
	}

	if existing != nil {
		if existing.IsVerified() {
			return nil, errors.NewConflictError("An account with this email already exists")
		}

		// Unverified duplicate signup: treat as a request for a fresh
		// verification code rather than an error.
		if err := uc.otpService.Issue(ctx, existing.ID(), existing.Email(),
			existing.Profile().DisplayName(), account.OTPPurposeEmailVerification); err != nil {
			return nil, err
		}

		uc.logger.Infow("verification code re-issued for unverified signup",
			"email", utils.MaskEmail(existing.Email()))

		return &SignupResult{
			AccountID:  existing.ID(),
			Email:      existing.Email(),
			NextStep:   existing.NextStep(),
			CodeResent: true,
		}, nil
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Signup failed")
	}

	acct, err := account.NewPasswordAccount(cmd.Email, role, cmd.Profile)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := acct.SetPasswordHash(hash); err != nil {
		return nil, errors.NewInternalError("Signup failed")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.accountRepo.Create(txCtx, acct); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("An account with this email already exists")
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		method, err := account.NewAuthMethod(acct.ID(), account.MethodPassword, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to build auth method: %w", err)
		}
		method.IsPrimary = true

		if err := uc.authMethodRepo.Create(txCtx, method); err != nil {
			return fmt.Errorf("failed to create auth method: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("signup transaction failed", "error", err)
		return nil, errors.NewInternalError("Signup failed")
	}

	// Issued after the account row is committed; a delivery failure leaves a
	// valid unverified account that can request a resend.
	if err := uc.otpService.Issue(ctx, acct.ID(), acct.Email(),
		acct.Profile().DisplayName(), account.OTPPurposeEmailVerification); err != nil {
		uc.logger.Warnw("verification code delivery failed after signup",
			"error", err,
			"account_id", acct.ID())
	}

	uc.logger.Infow("account registered",
		"account_id", acct.ID(),
		"email", utils.MaskEmail(acct.Email()),
		"role", role)

	return &SignupResult{
		AccountID: acct.ID(),
		Email:     acct.Email(),
		NextStep:  acct.NextStep(),
	}, nil
}
