package usecases

import (
	"context"

	"seedfund/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenUseCase exchanges a valid refresh token for a fresh pair.
type RefreshTokenUseCase struct {
	tokenService TokenService
	logger       logger.Interface
}

func NewRefreshTokenUseCase(tokenService TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error) {
	tokens, err := uc.tokenService.Refresh(cmd.RefreshToken)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
