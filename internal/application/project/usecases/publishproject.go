package usecases

import (
	"context"

	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type PublishProjectCommand struct {
	ProjectID uint
	AccountID uint
}

// PublishProjectUseCase moves a draft listing to active so it can accept
// investments. Only the owner may publish.
type PublishProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewPublishProjectUseCase(projectRepo project.Repository, logger logger.Interface) *PublishProjectUseCase {
	return &PublishProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *PublishProjectUseCase) Execute(ctx context.Context, cmd PublishProjectCommand) error {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err)
		return errors.NewInternalError("Failed to publish project")
	}
	if p == nil {
		return errors.NewNotFoundError("Project not found")
	}
	if p.OwnerID != cmd.AccountID {
		return errors.NewStateGateError("Only the project owner can publish")
	}

	if err := p.Publish(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist publish", "error", err, "project_id", p.ID)
		return errors.NewInternalError("Failed to publish project")
	}

	uc.logger.Infow("project published", "project_id", p.ID)
	return nil
}
