package usecases

import (
	"context"
	"time"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/logger"
)

type mockAccountRepository struct {
	CreateFunc               func(ctx context.Context, acct *account.Account) error
	UpdateFunc               func(ctx context.Context, acct *account.Account) error
	GetByIDFunc              func(ctx context.Context, id uint) (*account.Account, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*account.Account, error)
	ExistsByEmailFunc        func(ctx context.Context, email string) (bool, error)
	ListByApprovalStatusFunc func(ctx context.Context, status account.ApprovalStatus, page, pageSize int) ([]*account.Account, int64, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acct *account.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, acct)
	}
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, acct *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, acct)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockAccountRepository) ListByApprovalStatus(ctx context.Context, status account.ApprovalStatus, page, pageSize int) ([]*account.Account, int64, error) {
	if m.ListByApprovalStatusFunc != nil {
		return m.ListByApprovalStatusFunc(ctx, status, page, pageSize)
	}
	return nil, 0, nil
}

type mockAuthMethodRepository struct {
	CreateFunc                func(ctx context.Context, method *account.AuthMethod) error
	UpdateFunc                func(ctx context.Context, method *account.AuthMethod) error
	ListActiveByAccountFunc   func(ctx context.Context, accountID uint) ([]*account.AuthMethod, error)
	GetByAccountAndMethodFunc func(ctx context.Context, accountID uint, method account.Method, providerID *string) (*account.AuthMethod, error)
	GetByProviderIdentityFunc func(ctx context.Context, method account.Method, providerID string) (*account.AuthMethod, error)
	SetPrimaryFunc            func(ctx context.Context, accountID uint, method account.Method, providerID *string) error
	DeactivateFunc            func(ctx context.Context, accountID uint, method account.Method, providerID *string) error
}

func (m *mockAuthMethodRepository) Create(ctx context.Context, method *account.AuthMethod) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, method)
	}
	return nil
}

func (m *mockAuthMethodRepository) Update(ctx context.Context, method *account.AuthMethod) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, method)
	}
	return nil
}

func (m *mockAuthMethodRepository) ListActiveByAccount(ctx context.Context, accountID uint) ([]*account.AuthMethod, error) {
	if m.ListActiveByAccountFunc != nil {
		return m.ListActiveByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockAuthMethodRepository) GetByAccountAndMethod(ctx context.Context, accountID uint, method account.Method, providerID *string) (*account.AuthMethod, error) {
	if m.GetByAccountAndMethodFunc != nil {
		return m.GetByAccountAndMethodFunc(ctx, accountID, method, providerID)
	}
	return nil, nil
}

func (m *mockAuthMethodRepository) GetByProviderIdentity(ctx context.Context, method account.Method, providerID string) (*account.AuthMethod, error) {
	if m.GetByProviderIdentityFunc != nil {
		return m.GetByProviderIdentityFunc(ctx, method, providerID)
	}
	return nil, nil
}

func (m *mockAuthMethodRepository) SetPrimary(ctx context.Context, accountID uint, method account.Method, providerID *string) error {
	if m.SetPrimaryFunc != nil {
		return m.SetPrimaryFunc(ctx, accountID, method, providerID)
	}
	return nil
}

func (m *mockAuthMethodRepository) Deactivate(ctx context.Context, accountID uint, method account.Method, providerID *string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, accountID, method, providerID)
	}
	return nil
}

type mockStateTokenRepository struct {
	CreateFunc        func(ctx context.Context, token *account.StateToken) error
	ConsumeFunc       func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error)
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockStateTokenRepository) Create(ctx context.Context, token *account.StateToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *mockStateTokenRepository) Consume(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token, provider)
	}
	return nil, account.ErrStateTokenInvalid
}

func (m *mockStateTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	return 0, nil
}

type mockOTPService struct {
	IssueFunc  func(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error
	VerifyFunc func(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error)
}

func (m *mockOTPService) Issue(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, accountID, email, displayName, purpose)
	}
	return nil
}

func (m *mockOTPService) Verify(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code, purpose)
	}
	return &account.OTPCode{}, nil
}

type mockTokenService struct {
	GenerateFunc func(accountID uint, email string, role authorization.Role) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (*TokenPair, error)
}

func (m *mockTokenService) Generate(accountID uint, email string, role authorization.Role) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, email, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockEmailService struct {
	SendPasswordChangedEmailFunc func(to, displayName string) error
}

func (m *mockEmailService) SendPasswordChangedEmail(to, displayName string) error {
	if m.SendPasswordChangedEmailFunc != nil {
		return m.SendPasswordChangedEmailFunc(to, displayName)
	}
	return nil
}

type mockOAuthClient struct {
	GetAuthURLFunc   func(state string) string
	ExchangeCodeFunc func(ctx context.Context, code string) (string, error)
	GetUserInfoFunc  func(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

func (m *mockOAuthClient) GetAuthURL(state string) string {
	if m.GetAuthURLFunc != nil {
		return m.GetAuthURLFunc(state)
	}
	return "https://provider.example.com/auth?state=" + state
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code)
	}
	return "provider-access-token", nil
}

func (m *mockOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	if m.GetUserInfoFunc != nil {
		return m.GetUserInfoFunc(ctx, accessToken)
	}
	return nil, nil
}

type mockOAuthClientResolver struct {
	GetClientFunc func(provider string) (OAuthClient, error)
}

func (m *mockOAuthClientResolver) GetClient(provider string) (OAuthClient, error) {
	if m.GetClientFunc != nil {
		return m.GetClientFunc(provider)
	}
	return &mockOAuthClient{}, nil
}

type mockStateGenerator struct {
	GenerateFunc func() (string, error)
}

func (m *mockStateGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "random-state-value", nil
}

// mockTransactionManager runs the callback inline; repository fakes observe
// the same calls they would inside a real transaction.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
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

type accountFixture struct {
	ID             uint
	Email          string
	PasswordHash   *string
	Role           authorization.Role
	IsVerified     bool
	ApprovalStatus account.ApprovalStatus
	IsActive       bool
	Origin         account.Origin
	Profile        account.Profile
}

// buildAccount reconstructs an account snapshot for a test scenario. Zero
// fields get sensible defaults: an approved, verified, active investor.
func buildAccount(f accountFixture) *account.Account {
	if f.ID == 0 {
		f.ID = 1
	}
	if f.Email == "" {
		f.Email = "user@example.com"
	}
	if f.Role == "" {
		f.Role = authorization.RoleInvestor
	}
	if f.ApprovalStatus == "" {
		f.ApprovalStatus = account.ApprovalApproved
	}
	if f.Origin == "" {
		f.Origin = account.OriginPassword
	}

	now := time.Now().UTC()
	var verifiedAt *time.Time
	if f.IsVerified {
		verifiedAt = &now
	}

	acct, err := account.Reconstruct(account.ReconstructData{
		ID:             f.ID,
		Email:          f.Email,
		PasswordHash:   f.PasswordHash,
		Role:           f.Role,
		IsVerified:     f.IsVerified,
		VerifiedAt:     verifiedAt,
		ApprovalStatus: f.ApprovalStatus,
		ProfileStep:    account.StepComplete,
		IsActive:       f.IsActive,
		Origin:         f.Origin,
		Profile:        f.Profile,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	})
	if err != nil {
		panic(err)
	}
	return acct
}

func strPtr(s string) *string { return &s }
