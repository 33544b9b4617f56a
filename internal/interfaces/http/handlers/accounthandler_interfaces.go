package handlers

import (
	"context"

	"seedfund/internal/application/account/usecases"
	"seedfund/internal/domain/account"
)

// Use case interfaces for AccountHandler - enables unit testing with mocks.

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.UpdateProfileResult, error)
}

type selectRoleUseCase interface {
	Execute(ctx context.Context, cmd usecases.SelectRoleCommand) (*usecases.SelectRoleResult, error)
}

type resubmitApplicationUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResubmitApplicationCommand) (*usecases.ResubmitApplicationResult, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

type listAuthMethodsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListAuthMethodsCommand) ([]*account.AuthMethod, error)
}

type setPrimaryAuthMethodUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetPrimaryAuthMethodCommand) error
}

type unlinkAuthMethodUseCase interface {
	Execute(ctx context.Context, cmd usecases.UnlinkAuthMethodCommand) error
}
