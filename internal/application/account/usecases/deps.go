package usecases

import (
	"context"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/authorization"
)

// TokenPair is the issued credential pair returned to callers.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues and refreshes signed token pairs.
type TokenService interface {
	Generate(accountID uint, email string, role authorization.Role) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

// PasswordHasher hashes and verifies password secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// OTPService is the passcode engine surface the auth flows depend on.
type OTPService interface {
	Issue(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error
	Verify(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error)
}

// EmailService sends non-OTP notification mail.
type EmailService interface {
	SendPasswordChangedEmail(to, displayName string) error
}

// OAuthUserInfo is the provider-neutral identity shape the reconcile flow
// consumes.
type OAuthUserInfo struct {
	Email         string
	FirstName     string
	LastName      string
	Picture       string
	EmailVerified bool
	Provider      string
	ProviderID    string
}

// OAuthClient is one configured federation provider.
type OAuthClient interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

// OAuthClientResolver resolves a provider name to its configured client, or
// fails when credentials are absent from the configuration.
type OAuthClientResolver interface {
	GetClient(provider string) (OAuthClient, error)
}

// StateGenerator produces random OAuth state token values.
type StateGenerator interface {
	Generate() (string, error)
}

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
