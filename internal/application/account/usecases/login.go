package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type LoginCommand struct {
	Email      string
	Credential string
	Method     account.Method
}

type LoginResult struct {
	Account      *account.Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	NextStep     string
}

// LoginUseCase authenticates with a password or a login passcode and applies
// the lifecycle gates in their fixed order before issuing tokens.
type LoginUseCase struct {
	accountRepo    account.Repository
	authMethodRepo account.AuthMethodRepository
	otpService     OTPService
	hasher         PasswordHasher
	tokenService   TokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	authMethodRepo account.AuthMethodRepository,
	otpService OTPService,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo:    accountRepo,
		authMethodRepo: authMethodRepo,
		otpService:     otpService,
		hasher:         hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Method != account.MethodPassword && cmd.Method != account.MethodOTP {
		return nil, errors.NewValidationError("Login method must be password or otp")
	}

	acct, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account for login", "error", err)
		return nil, errors.NewInternalError("Login failed")
	}
	if acct == nil {
		// Unknown emails get the same response as a bad credential so login
		// cannot be used to probe for registered addresses.
		return nil, errors.NewInvalidCredentialsError()
	}

	switch cmd.Method {
	case account.MethodPassword:
		if !acct.HasPassword() {
			return nil, errors.NewPasswordNotSetError()
		}
		if err := uc.hasher.Verify(cmd.Credential, *acct.PasswordHash()); err != nil {
			uc.logger.Warnw("password mismatch on login",
				"email", utils.MaskEmail(acct.Email()))
			return nil, errors.NewInvalidCredentialsError()
		}
	case account.MethodOTP:
		if _, err := uc.otpService.Verify(ctx, acct.Email(), cmd.Credential, account.OTPPurposeLogin); err != nil {
			return nil, err
		}
	}

	// The credential was correct; now the lifecycle gates apply, in order.
	switch acct.LifecycleState() {
	case account.StateDeactivated:
		return nil, errors.NewStateGateError("Account is deactivated")
	case account.StatePendingVerification:
		// Side effect: a correct credential against an unverified account
		// re-sends the verification code. Rate limiting still applies.
		if err := uc.otpService.Issue(ctx, acct.ID(), acct.Email(),
			acct.Profile().DisplayName(), account.OTPPurposeEmailVerification); err != nil {
			uc.logger.Debugw("verification re-send on login skipped", "error", err)
		}
		return nil, errors.NewStateGateError("Email not verified",
			"A new verification code has been sent")
	case account.StateRejected:
		return nil, errors.NewStateGateError("Application was rejected",
			"You may update your profile and resubmit")
	case account.StatePendingApproval:
		return nil, errors.NewStateGateError("Account is pending approval")
	}

	tokens, err := uc.tokenService.Generate(acct.ID(), acct.Email(), acct.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "account_id", acct.ID())
		return nil, errors.NewInternalError("Login failed")
	}

	uc.recordMethodUse(ctx, acct.ID(), cmd.Method)

	uc.logger.Infow("login successful",
		"account_id", acct.ID(),
		"method", cmd.Method)

	return &LoginResult{
		Account:      acct,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		NextStep:     acct.NextStep(),
	}, nil
}

// recordMethodUse stamps last_used_at on the credential row. Best effort.
func (uc *LoginUseCase) recordMethodUse(ctx context.Context, accountID uint, method account.Method) {
	record, err := uc.authMethodRepo.GetByAccountAndMethod(ctx, accountID, method, nil)
	if err != nil || record == nil {
		return
	}
	record.RecordUse()
	if err := uc.authMethodRepo.Update(ctx, record); err != nil {
		uc.logger.Debugw("failed to record auth method use", "error", err)
	}
}
