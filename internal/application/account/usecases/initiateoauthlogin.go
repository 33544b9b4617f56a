package usecases

import (
	"context"
	"time"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type InitiateOAuthLoginCommand struct {
	Provider    string
	RedirectURL *string
}

type InitiateOAuthLoginResult struct {
	AuthURL string
	State   string
}

// InitiateOAuthLoginUseCase persists a single-use state token and builds the
// provider consent URL carrying it.
type InitiateOAuthLoginUseCase struct {
	stateTokenRepo account.StateTokenRepository
	clientResolver OAuthClientResolver
	stateGen       StateGenerator
	stateTTL       time.Duration
	logger         logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	stateTokenRepo account.StateTokenRepository,
	clientResolver OAuthClientResolver,
	stateGen StateGenerator,
	stateTTL time.Duration,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	if stateTTL <= 0 {
		stateTTL = account.DefaultStateTokenTTL
	}
	return &InitiateOAuthLoginUseCase{
		stateTokenRepo: stateTokenRepo,
		clientResolver: clientResolver,
		stateGen:       stateGen,
		stateTTL:       stateTTL,
		logger:         logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(ctx context.Context, cmd InitiateOAuthLoginCommand) (*InitiateOAuthLoginResult, error) {
	origin, err := parseOAuthProvider(cmd.Provider)
	if err != nil {
		return nil, err
	}

	client, err := uc.clientResolver.GetClient(cmd.Provider)
	if err != nil {
		return nil, errors.NewValidationError("OAuth provider not configured",
			cmd.Provider+" login is not available")
	}

	state, err := uc.stateGen.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate state token", "error", err)
		return nil, errors.NewInternalError("Failed to start OAuth login")
	}

	token := account.NewStateToken(state, origin, cmd.RedirectURL, uc.stateTTL)
	if err := uc.stateTokenRepo.Create(ctx, token); err != nil {
		uc.logger.Errorw("failed to persist state token", "error", err)
		return nil, errors.NewInternalError("Failed to start OAuth login")
	}

	return &InitiateOAuthLoginResult{
		AuthURL: client.GetAuthURL(state),
		State:   state,
	}, nil
}

func parseOAuthProvider(provider string) (account.Origin, error) {
	switch provider {
	case "google":
		return account.OriginGoogle, nil
	case "linkedin":
		return account.OriginLinkedIn, nil
	default:
		return "", errors.NewValidationError("Unsupported OAuth provider", provider)
	}
}
