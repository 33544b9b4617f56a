package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"seedfund/internal/domain/account"
	"seedfund/internal/domain/project"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type InvestCommand struct {
	ProjectID uint
	AccountID uint
	Amount    int64
}

type InvestResult struct {
	Investment   *project.Investment
	FundingTotal int64
	Funded       bool
}

// InvestUseCase commits an amount into an active project. The project row is
// locked for the duration of the transaction so concurrent investments cannot
// oversubscribe the funding goal.
type InvestUseCase struct {
	projectRepo    project.Repository
	investmentRepo project.InvestmentRepository
	accountRepo    account.Repository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewInvestUseCase(
	projectRepo project.Repository,
	investmentRepo project.InvestmentRepository,
	accountRepo account.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *InvestUseCase {
	return &InvestUseCase{
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		accountRepo:    accountRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *InvestUseCase) Execute(ctx context.Context, cmd InvestCommand) (*InvestResult, error) {
	if cmd.Amount <= 0 {
		return nil, errors.NewValidationError("Investment amount must be positive")
	}

	investor, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load investor account", "error", err)
		return nil, errors.NewInternalError("Investment failed")
	}
	if investor == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}
	if investor.Role() != authorization.RoleInvestor {
		return nil, errors.NewStateGateError("Only investors can invest")
	}
	if !investor.CanTransact() {
		return nil, errors.NewStateGateError("Account is not approved for this action")
	}

	var (
		inv *project.Investment
		p   *project.Project
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err = uc.projectRepo.GetByIDForUpdate(txCtx, cmd.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to lock project: %w", err)
		}
		if p == nil {
			return errors.NewNotFoundError("Project not found")
		}
		if p.OwnerID == cmd.AccountID {
			return errors.NewConflictError("Owners cannot invest in their own project")
		}

		if err := p.AcceptInvestment(cmd.Amount); err != nil {
			switch {
			case stderrors.Is(err, project.ErrProjectNotInvestable):
				return errors.NewConflictError("Project is not open for investment")
			case stderrors.Is(err, project.ErrFundingGoalExceeded):
				return errors.NewConflictError("Investment would exceed the funding goal")
			default:
				return errors.NewValidationError(err.Error())
			}
		}

		inv, err = project.NewInvestment(p.ID, cmd.AccountID, cmd.Amount)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.investmentRepo.CreateInvestment(txCtx, inv); err != nil {
			return fmt.Errorf("failed to record investment: %w", err)
		}
		if err := uc.projectRepo.Update(txCtx, p); err != nil {
			return fmt.Errorf("failed to update funding total: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("investment transaction failed", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("Investment failed")
	}

	uc.logger.Infow("investment recorded",
		"project_id", p.ID,
		"account_id", cmd.AccountID,
		"amount", cmd.Amount,
		"funding_total", p.FundingTotal)

	return &InvestResult{
		Investment:   inv,
		FundingTotal: p.FundingTotal,
		Funded:       p.Status == project.StatusFunded,
	}, nil
}
