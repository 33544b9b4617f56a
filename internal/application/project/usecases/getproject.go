package usecases

import (
	"context"

	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type GetProjectCommand struct {
	ProjectID uint
}

type GetProjectResult struct {
	Project       *project.Project
	AverageRating float64
	RatingCount   int64
}

// GetProjectUseCase loads one listing together with its rating aggregate.
type GetProjectUseCase struct {
	projectRepo    project.Repository
	investmentRepo project.InvestmentRepository
	logger         logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.Repository,
	investmentRepo project.InvestmentRepository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*GetProjectResult, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err)
		return nil, errors.NewInternalError("Failed to load project")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Project not found")
	}

	avg, count, err := uc.investmentRepo.AverageRating(ctx, p.ID)
	if err != nil {
		uc.logger.Errorw("failed to load rating aggregate", "error", err, "project_id", p.ID)
		return nil, errors.NewInternalError("Failed to load project")
	}

	return &GetProjectResult{
		Project:       p,
		AverageRating: avg,
		RatingCount:   count,
	}, nil
}
