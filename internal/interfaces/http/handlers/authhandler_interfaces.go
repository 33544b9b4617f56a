package handlers

import (
	"context"

	"seedfund/internal/application/account/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type requestLoginOTPUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestLoginOTPCommand) error
}

type verifyEmailUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyEmailCommand) (*usecases.VerifyEmailResult, error)
}

type resendVerificationUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResendVerificationCommand) error
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.TokenPair, error)
}

type initiateOAuthUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitiateOAuthLoginCommand) (*usecases.InitiateOAuthLoginResult, error)
}

type handleOAuthCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleOAuthCallbackCommand) (*usecases.HandleOAuthCallbackResult, error)
}
