package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/domain/project"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type RateProjectCommand struct {
	ProjectID uint
	AccountID uint
	Score     int
}

type RateProjectResult struct {
	AverageRating float64
	RatingCount   int64
}

// RateProjectUseCase upserts one account's score for a project. Rating again
// replaces the earlier score instead of adding a second row.
type RateProjectUseCase struct {
	projectRepo    project.Repository
	investmentRepo project.InvestmentRepository
	accountRepo    account.Repository
	logger         logger.Interface
}

func NewRateProjectUseCase(
	projectRepo project.Repository,
	investmentRepo project.InvestmentRepository,
	accountRepo account.Repository,
	logger logger.Interface,
) *RateProjectUseCase {
	return &RateProjectUseCase{
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		accountRepo:    accountRepo,
		logger:         logger,
	}
}

func (uc *RateProjectUseCase) Execute(ctx context.Context, cmd RateProjectCommand) (*RateProjectResult, error) {
	rater, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load account", "error", err)
		return nil, errors.NewInternalError("Failed to rate project")
	}
	if rater == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}
	if !rater.CanTransact() {
		return nil, errors.NewStateGateError("Account is not approved for this action")
	}

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err)
		return nil, errors.NewInternalError("Failed to rate project")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Project not found")
	}

	existing, err := uc.investmentRepo.GetRating(ctx, p.ID, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load existing rating", "error", err)
		return nil, errors.NewInternalError("Failed to rate project")
	}

	var rating *project.Rating
	if existing != nil {
		if err := existing.SetScore(cmd.Score); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		rating = existing
	} else {
		rating, err = project.NewRating(p.ID, cmd.AccountID, cmd.Score)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.investmentRepo.SaveRating(ctx, rating); err != nil {
		uc.logger.Errorw("failed to save rating", "error", err, "project_id", p.ID)
		return nil, errors.NewInternalError("Failed to rate project")
	}

	avg, count, err := uc.investmentRepo.AverageRating(ctx, p.ID)
	if err != nil {
		uc.logger.Errorw("failed to load rating aggregate", "error", err, "project_id", p.ID)
		return nil, errors.NewInternalError("Failed to rate project")
	}

	return &RateProjectResult{
		AverageRating: avg,
		RatingCount:   count,
	}, nil
}
