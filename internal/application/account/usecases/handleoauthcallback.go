package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type HandleOAuthCallbackCommand struct {
	Provider string
	Code     string
	State    string
}

type HandleOAuthCallbackResult struct {
	Account      *account.Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	IsNewUser    bool
	NextStep     string
	RedirectURL  *string
}

// HandleOAuthCallbackUseCase consumes the state token, exchanges the code,
// and reconciles the external identity against existing accounts inside one
// transaction. Repeated logins by the same external identity are idempotent.
type HandleOAuthCallbackUseCase struct {
	accountRepo    account.Repository
	authMethodRepo account.AuthMethodRepository
	stateTokenRepo account.StateTokenRepository
	clientResolver OAuthClientResolver
	tokenService   TokenService
	txManager      TransactionManager
	logger         logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	accountRepo account.Repository,
	authMethodRepo account.AuthMethodRepository,
	stateTokenRepo account.StateTokenRepository,
	clientResolver OAuthClientResolver,
	tokenService TokenService,
	txManager TransactionManager,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		accountRepo:    accountRepo,
		authMethodRepo: authMethodRepo,
		stateTokenRepo: stateTokenRepo,
		clientResolver: clientResolver,
		tokenService:   tokenService,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	origin, err := parseOAuthProvider(cmd.Provider)
	if err != nil {
		return nil, err
	}

	client, err := uc.clientResolver.GetClient(cmd.Provider)
	if err != nil {
		return nil, errors.NewValidationError("OAuth provider not configured",
			cmd.Provider+" login is not available")
	}

	// The state token is burned before anything else; a replayed callback
	// fails here no matter what the rest of the request looks like.
	stateToken, err := uc.stateTokenRepo.Consume(ctx, cmd.State, origin)
	if err != nil {
		if stderrors.Is(err, account.ErrStateTokenInvalid) {
			return nil, errors.NewUnauthorizedError("Invalid or expired OAuth state")
		}
		uc.logger.Errorw("failed to consume state token", "error", err)
		return nil, errors.NewInternalError("OAuth login failed")
	}

	accessToken, err := client.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to exchange oauth code", "error", err, "provider", cmd.Provider)
		return nil, errors.NewOAuthError(cmd.Provider, "exchange")
	}

	userInfo, err := client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to fetch oauth user info", "error", err, "provider", cmd.Provider)
		return nil, errors.NewOAuthError(cmd.Provider, "userinfo")
	}
	if userInfo.Email == "" {
		return nil, errors.NewOAuthError(cmd.Provider, "userinfo", "provider returned no email")
	}

	var acct *account.Account
	isNewUser := false

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		acct, isNewUser, err = uc.reconcile(txCtx, origin, userInfo)
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		if stderrors.Is(err, account.ErrIdentityLinkedElsewhere) {
			return nil, errors.NewConflictError("This identity is already linked to another account")
		}
		uc.logger.Errorw("oauth reconcile failed", "error", err, "provider", cmd.Provider)
		return nil, errors.NewInternalError("OAuth login failed")
	}

	if acct.LifecycleState() == account.StateDeactivated {
		return nil, errors.NewStateGateError("Account is deactivated")
	}

	tokens, err := uc.tokenService.Generate(acct.ID(), acct.Email(), acct.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "account_id", acct.ID())
		return nil, errors.NewInternalError("OAuth login failed")
	}

	uc.logger.Infow("oauth login successful",
		"account_id", acct.ID(),
		"provider", cmd.Provider,
		"is_new_user", isNewUser)

	return &HandleOAuthCallbackResult{
		Account:      acct,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		IsNewUser:    isNewUser,
		NextStep:     acct.NextStep(),
		RedirectURL:  stateToken.RedirectURL,
	}, nil
}

// reconcile resolves the external identity to an account, creating the
// account and/or auth method link as needed. Runs inside one transaction.
func (uc *HandleOAuthCallbackUseCase) reconcile(ctx context.Context, origin account.Origin, info *OAuthUserInfo) (*account.Account, bool, error) {
	method := account.MethodForOrigin(origin)

	linked, err := uc.authMethodRepo.GetByProviderIdentity(ctx, method, info.ProviderID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve provider identity: %w", err)
	}

	if linked != nil {
		acct, err := uc.accountRepo.GetByID(ctx, linked.AccountID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load linked account: %w", err)
		}
		if acct == nil {
			return nil, false, fmt.Errorf("auth method %d references missing account %d", linked.ID, linked.AccountID)
		}

		linked.RecordUse()
		if err := uc.authMethodRepo.Update(ctx, linked); err != nil {
			uc.logger.Warnw("failed to record auth method use", "error", err)
		}

		uc.backfillAvatar(ctx, acct, info)
		return acct, false, nil
	}

	acct, err := uc.accountRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up account by email: %w", err)
	}

	var existingMethods []*account.AuthMethod
	if acct != nil {
		existingMethods, err = uc.authMethodRepo.ListActiveByAccount(ctx, acct.ID())
		if err != nil {
			return nil, false, fmt.Errorf("failed to list auth methods: %w", err)
		}
	}

	// linked is nil on this path, so the precondition check decides between
	// provisioning a fresh account and attaching the identity to the one
	// that owns the email.
	switch linkErr := account.CanLinkExternalIdentity(acct, existingMethods, linked, method); {
	case linkErr == nil:

	case stderrors.Is(linkErr, account.ErrNoAccountForEmail):
		profile := account.Profile{
			FirstName: info.FirstName,
			LastName:  info.LastName,
			AvatarURL: info.Picture,
		}
		acct, err = account.NewOAuthAccount(info.Email, origin, profile)
		if err != nil {
			return nil, false, fmt.Errorf("failed to build oauth account: %w", err)
		}
		if err := uc.accountRepo.Create(ctx, acct); err != nil {
			return nil, false, fmt.Errorf("failed to create oauth account: %w", err)
		}

		if err := uc.linkMethod(ctx, acct.ID(), method, info, true); err != nil {
			return nil, false, err
		}

		return acct, true, nil

	case stderrors.Is(linkErr, account.ErrOriginConflict):
		// Password-originated accounts with no federated method are refused
		// instead of silently merged.
		uc.logger.Warnw("oauth login refused for password-originated account",
			"email", utils.MaskEmail(info.Email),
			"provider", origin)
		return nil, false, errors.NewOriginConflictError(string(origin))

	default:
		return nil, false, linkErr
	}

	if err := uc.linkMethod(ctx, acct.ID(), method, info, false); err != nil {
		return nil, false, err
	}

	uc.backfillAvatar(ctx, acct, info)
	return acct, false, nil
}

func (uc *HandleOAuthCallbackUseCase) linkMethod(ctx context.Context, accountID uint, method account.Method, info *OAuthUserInfo, primary bool) error {
	// Reactivate an earlier unlinked row instead of inserting a duplicate.
	existing, err := uc.authMethodRepo.GetByAccountAndMethod(ctx, accountID, method, &info.ProviderID)
	if err != nil {
		return fmt.Errorf("failed to check existing auth method: %w", err)
	}
	if existing != nil {
		if !existing.IsActive {
			existing.Reactivate()
			return uc.authMethodRepo.Update(ctx, existing)
		}
		return nil
	}

	record, err := account.NewAuthMethod(accountID, method, &info.ProviderID, &info.Email)
	if err != nil {
		return fmt.Errorf("failed to build auth method: %w", err)
	}
	record.IsPrimary = primary
	record.RecordUse()

	if err := uc.authMethodRepo.Create(ctx, record); err != nil {
		// The unique (method, provider id) index lost a race against another
		// account claiming the identity.
		if errors.IsDuplicateError(err) {
			return account.ErrIdentityLinkedElsewhere
		}
		return fmt.Errorf("failed to create auth method: %w", err)
	}
	return nil
}

// backfillAvatar copies the provider picture onto an account that has none.
func (uc *HandleOAuthCallbackUseCase) backfillAvatar(ctx context.Context, acct *account.Account, info *OAuthUserInfo) {
	if info.Picture == "" || acct.Profile().AvatarURL != "" {
		return
	}
	profile := acct.Profile()
	profile.AvatarURL = info.Picture
	acct.UpdateProfile(profile)
	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Warnw("failed to backfill avatar", "error", err, "account_id", acct.ID())
	}
}
