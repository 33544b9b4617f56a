package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/domain/project"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type CreateProjectCommand struct {
	OwnerID     uint
	Title       string
	Summary     string
	Category    string
	FundingGoal int64
}

type CreateProjectResult struct {
	Project *project.Project
}

// CreateProjectUseCase creates a draft listing for an approved project owner.
type CreateProjectUseCase struct {
	projectRepo project.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	accountRepo account.Repository,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	owner, err := uc.accountRepo.GetByID(ctx, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to load owner account", "error", err)
		return nil, errors.NewInternalError("Failed to create project")
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}
	if owner.Role() != authorization.RoleProjectOwner {
		return nil, errors.NewStateGateError("Only project owners can create projects")
	}
	if !owner.CanTransact() {
		return nil, errors.NewStateGateError("Account is not approved for this action")
	}

	p, err := project.NewProject(cmd.OwnerID, cmd.Title, cmd.Summary, cmd.Category, cmd.FundingGoal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create project", "error", err)
		return nil, errors.NewInternalError("Failed to create project")
	}

	uc.logger.Infow("project created",
		"project_id", p.ID,
		"owner_id", p.OwnerID)

	return &CreateProjectResult{Project: p}, nil
}
