package usecases

import (
	"context"

	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type ListProjectsCommand struct {
	Category string
	Page     int
	PageSize int
}

type ListProjectsResult struct {
	Projects []*project.Project
	Total    int64
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, cmd ListProjectsCommand) (*ListProjectsResult, error) {
	projects, total, err := uc.projectRepo.List(ctx, cmd.Category, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, errors.NewInternalError("Failed to list projects")
	}

	return &ListProjectsResult{
		Projects: projects,
		Total:    total,
	}, nil
}
