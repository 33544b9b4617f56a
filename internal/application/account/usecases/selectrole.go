package usecases

import (
	"context"
	stderrors "errors"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type SelectRoleCommand struct {
	AccountID uint
	Role      string
}

type SelectRoleResult struct {
	Role     authorization.Role
	NextStep string
}

// SelectRoleUseCase assigns a role to an OAuth-created account that is still
// unassigned. The choice is permanent through this flow.
type SelectRoleUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewSelectRoleUseCase(accountRepo account.Repository, logger logger.Interface) *SelectRoleUseCase {
	return &SelectRoleUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *SelectRoleUseCase) Execute(ctx context.Context, cmd SelectRoleCommand) (*SelectRoleResult, error) {
	role := authorization.ParseRole(cmd.Role)
	if !role.IsSelectable() {
		return nil, errors.NewValidationError("Role must be investor or project_owner")
	}

	acct, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return nil, errors.NewInternalError("Failed to select role")
	}
	if acct == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}

	if err := acct.SelectRole(role); err != nil {
		if stderrors.Is(err, account.ErrRoleAlreadySet) {
			return nil, errors.NewConflictError("Role has already been selected")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, acct); err != nil {
		uc.logger.Errorw("failed to persist role selection", "error", err, "account_id", acct.ID())
		return nil, errors.NewInternalError("Failed to select role")
	}

	uc.logger.Infow("role selected", "account_id", acct.ID(), "role", role)

	return &SelectRoleResult{
		Role:     acct.Role(),
		NextStep: acct.NextStep(),
	}, nil
}
