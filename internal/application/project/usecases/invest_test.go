package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedfund/internal/domain/account"
	"seedfund/internal/domain/project"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/errors"
)

func newInvestUseCase(
	projectRepo *mockProjectRepository,
	investmentRepo *mockInvestmentRepository,
	accountRepo *mockAccountRepository,
) *InvestUseCase {
	return NewInvestUseCase(projectRepo, investmentRepo, accountRepo, &mockTransactionManager{}, nopLogger{})
}

func TestInvestUseCase_AmountMustBePositive(t *testing.T) {
	uc := newInvestUseCase(&mockProjectRepository{}, &mockInvestmentRepository{}, &mockAccountRepository{})

	_, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 0})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestInvestUseCase_OnlyInvestorsInvest(t *testing.T) {
	owner := approvedAccount(2, authorization.RoleProjectOwner)
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return owner, nil
		},
	}
	uc := newInvestUseCase(&mockProjectRepository{}, &mockInvestmentRepository{}, accountRepo)

	_, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 1000})

	require.Error(t, err)
	assert.True(t, errors.IsStateGateError(err))
}

func TestInvestUseCase_DraftProjectNotInvestable(t *testing.T) {
	investor := approvedAccount(2, authorization.RoleInvestor)
	p := activeProject(1, 9, 100000, 0)
	p.Status = project.StatusDraft
	uc := newInvestUseCase(
		&mockProjectRepository{
			GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*project.Project, error) {
				return p, nil
			},
		},
		&mockInvestmentRepository{},
		&mockAccountRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
				return investor, nil
			},
		},
	)

	_, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 1000})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestInvestUseCase_OverGoalRefused(t *testing.T) {
	investor := approvedAccount(2, authorization.RoleInvestor)
	p := activeProject(1, 9, 100000, 99500)
	created := false
	uc := newInvestUseCase(
		&mockProjectRepository{
			GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*project.Project, error) {
				return p, nil
			},
		},
		&mockInvestmentRepository{
			CreateInvestmentFunc: func(ctx context.Context, inv *project.Investment) error {
				created = true
				return nil
			},
		},
		&mockAccountRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
				return investor, nil
			},
		},
	)

	_, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 1000})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.False(t, created)
	// The refused investment must not touch the running total.
	assert.Equal(t, int64(99500), p.FundingTotal)
}

func TestInvestUseCase_OwnerCannotInvestInOwnProject(t *testing.T) {
	investor := approvedAccount(9, authorization.RoleInvestor)
	p := activeProject(1, 9, 100000, 0)
	uc := newInvestUseCase(
		&mockProjectRepository{
			GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*project.Project, error) {
				return p, nil
			},
		},
		&mockInvestmentRepository{},
		&mockAccountRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
				return investor, nil
			},
		},
	)

	_, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 9, Amount: 1000})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestInvestUseCase_Success(t *testing.T) {
	investor := approvedAccount(2, authorization.RoleInvestor)
	p := activeProject(1, 9, 100000, 40000)
	var recorded *project.Investment
	var persistedTotal int64
	uc := newInvestUseCase(
		&mockProjectRepository{
			GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*project.Project, error) {
				return p, nil
			},
			UpdateFunc: func(ctx context.Context, updated *project.Project) error {
				persistedTotal = updated.FundingTotal
				return nil
			},
		},
		&mockInvestmentRepository{
			CreateInvestmentFunc: func(ctx context.Context, inv *project.Investment) error {
				recorded = inv
				return nil
			},
		},
		&mockAccountRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
				return investor, nil
			},
		},
	)

	result, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 10000})

	require.NoError(t, err)
	assert.Equal(t, int64(50000), result.FundingTotal)
	assert.False(t, result.Funded)
	require.NotNil(t, recorded)
	assert.Equal(t, int64(10000), recorded.Amount)
	assert.Equal(t, int64(50000), persistedTotal)
}

// Reaching the goal exactly flips the project to funded inside the same
// transaction.
func TestInvestUseCase_ExactGoalMarksFunded(t *testing.T) {
	investor := approvedAccount(2, authorization.RoleInvestor)
	p := activeProject(1, 9, 100000, 90000)
	uc := newInvestUseCase(
		&mockProjectRepository{
			GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*project.Project, error) {
				return p, nil
			},
		},
		&mockInvestmentRepository{},
		&mockAccountRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
				return investor, nil
			},
		},
	)

	result, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 10000})

	require.NoError(t, err)
	assert.True(t, result.Funded)
	assert.Equal(t, project.StatusFunded, p.Status)
}

func TestInvestUseCase_PendingAccountBlocked(t *testing.T) {
	investor := approvedAccount(2, authorization.RoleInvestor)
	investor.Reject("pending review")
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return investor, nil
		},
	}
	locked := false
	projectRepo := &mockProjectRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			locked = true
			return activeProject(1, 9, 100000, 0), nil
		},
	}
	uc := newInvestUseCase(projectRepo, &mockInvestmentRepository{}, accountRepo)

	_, err := uc.Execute(context.Background(), InvestCommand{ProjectID: 1, AccountID: 2, Amount: 1000})

	require.Error(t, err)
	assert.True(t, errors.IsStateGateError(err))
	assert.False(t, locked)
}
