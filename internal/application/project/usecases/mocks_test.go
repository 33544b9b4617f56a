package usecases

import (
	"context"
	"time"

	"seedfund/internal/domain/account"
	"seedfund/internal/domain/project"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/logger"
)

type mockProjectRepository struct {
	CreateFunc           func(ctx context.Context, p *project.Project) error
	UpdateFunc           func(ctx context.Context, p *project.Project) error
	GetByIDFunc          func(ctx context.Context, id uint) (*project.Project, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*project.Project, error)
	ListFunc             func(ctx context.Context, category string, page, pageSize int) ([]*project.Project, int64, error)
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByIDForUpdate(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, category string, page, pageSize int) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category, page, pageSize)
	}
	return nil, 0, nil
}

type mockInvestmentRepository struct {
	CreateInvestmentFunc         func(ctx context.Context, inv *project.Investment) error
	ListInvestmentsByAccountFunc func(ctx context.Context, accountID uint, page, pageSize int) ([]*project.Investment, int64, error)
	GetRatingFunc                func(ctx context.Context, projectID, accountID uint) (*project.Rating, error)
	SaveRatingFunc               func(ctx context.Context, r *project.Rating) error
	AverageRatingFunc            func(ctx context.Context, projectID uint) (float64, int64, error)
	GetWatchlistItemFunc         func(ctx context.Context, projectID, accountID uint) (*project.WatchlistItem, error)
	AddWatchlistItemFunc         func(ctx context.Context, item *project.WatchlistItem) error
	RemoveWatchlistItemFunc      func(ctx context.Context, projectID, accountID uint) error
	ListWatchlistFunc            func(ctx context.Context, accountID uint, page, pageSize int) ([]*project.WatchlistItem, int64, error)
}

func (m *mockInvestmentRepository) CreateInvestment(ctx context.Context, inv *project.Investment) error {
	if m.CreateInvestmentFunc != nil {
		return m.CreateInvestmentFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvestmentRepository) ListInvestmentsByAccount(ctx context.Context, accountID uint, page, pageSize int) ([]*project.Investment, int64, error) {
	if m.ListInvestmentsByAccountFunc != nil {
		return m.ListInvestmentsByAccountFunc(ctx, accountID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockInvestmentRepository) GetRating(ctx context.Context, projectID, accountID uint) (*project.Rating, error) {
	if m.GetRatingFunc != nil {
		return m.GetRatingFunc(ctx, projectID, accountID)
	}
	return nil, nil
}

func (m *mockInvestmentRepository) SaveRating(ctx context.Context, r *project.Rating) error {
	if m.SaveRatingFunc != nil {
		return m.SaveRatingFunc(ctx, r)
	}
	return nil
}

func (m *mockInvestmentRepository) AverageRating(ctx context.Context, projectID uint) (float64, int64, error) {
	if m.AverageRatingFunc != nil {
		return m.AverageRatingFunc(ctx, projectID)
	}
	return 0, 0, nil
}

func (m *mockInvestmentRepository) GetWatchlistItem(ctx context.Context, projectID, accountID uint) (*project.WatchlistItem, error) {
	if m.GetWatchlistItemFunc != nil {
		return m.GetWatchlistItemFunc(ctx, projectID, accountID)
	}
	return nil, nil
}

func (m *mockInvestmentRepository) AddWatchlistItem(ctx context.Context, item *project.WatchlistItem) error {
	if m.AddWatchlistItemFunc != nil {
		return m.AddWatchlistItemFunc(ctx, item)
	}
	return nil
}

func (m *mockInvestmentRepository) RemoveWatchlistItem(ctx context.Context, projectID, accountID uint) error {
	if m.RemoveWatchlistItemFunc != nil {
		return m.RemoveWatchlistItemFunc(ctx, projectID, accountID)
	}
	return nil
}

func (m *mockInvestmentRepository) ListWatchlist(ctx context.Context, accountID uint, page, pageSize int) ([]*project.WatchlistItem, int64, error) {
	if m.ListWatchlistFunc != nil {
		return m.ListWatchlistFunc(ctx, accountID, page, pageSize)
	}
	return nil, 0, nil
}

type mockAccountRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*account.Account, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acct *account.Account) error { return nil }
func (m *mockAccountRepository) Update(ctx context.Context, acct *account.Account) error { return nil }

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return nil, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockAccountRepository) ListByApprovalStatus(ctx context.Context, status account.ApprovalStatus, page, pageSize int) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

type mockTransactionManager struct{}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                  {}
func (nopLogger) Info(msg string, args ...any)                   {}
func (nopLogger) Warn(msg string, args ...any)                   {}
func (nopLogger) Error(msg string, args ...any)                  {}
func (nopLogger) With(args ...any) logger.Interface              { return nopLogger{} }
func (nopLogger) Named(name string) logger.Interface             { return nopLogger{} }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// approvedAccount returns a transactable account with the given role.
func approvedAccount(id uint, role authorization.Role) *account.Account {
	now := time.Now().UTC()
	accredited := true
	acct, err := account.Reconstruct(account.ReconstructData{
		ID:             id,
		Email:          "user@example.com",
		Role:           role,
		IsVerified:     true,
		VerifiedAt:     &now,
		ApprovalStatus: account.ApprovalApproved,
		ProfileStep:    account.StepComplete,
		IsActive:       true,
		Origin:         account.OriginPassword,
		Profile: account.Profile{
			FirstName:            "Test",
			LastName:             "User",
			Phone:                "+1 555 0100",
			Company:              "Acme",
			Location:             "Berlin",
			InvestmentRange:      "10k-50k",
			InvestmentCategories: []string{"fintech"},
			AccreditedInvestor:   &accredited,
		},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	})
	if err != nil {
		panic(err)
	}
	return acct
}

func activeProject(id, ownerID uint, goal, total int64) *project.Project {
	now := time.Now().UTC()
	return &project.Project{
		ID:           id,
		OwnerID:      ownerID,
		Title:        "Solar Microgrid",
		Summary:      "Community-owned solar",
		Category:     "energy",
		FundingGoal:  goal,
		FundingTotal: total,
		Status:       project.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
