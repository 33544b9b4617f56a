package account

import (
	"context"
	"time"
)

// Repository persists accounts. Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, acct *Account) error
	Update(ctx context.Context, acct *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	// GetByEmail compares case-insensitively.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByApprovalStatus(ctx context.Context, status ApprovalStatus, page, pageSize int) ([]*Account, int64, error)
}

// AuthMethodRepository persists the account/credential-type join records.
type AuthMethodRepository interface {
	Create(ctx context.Context, method *AuthMethod) error
	Update(ctx context.Context, method *AuthMethod) error
	ListActiveByAccount(ctx context.Context, accountID uint) ([]*AuthMethod, error)
	// GetByAccountAndMethod matches providerID exactly when non-nil,
	// otherwise matches any row with that method. Inactive rows are included
	// so callers can reactivate instead of duplicating.
	GetByAccountAndMethod(ctx context.Context, accountID uint, method Method, providerID *string) (*AuthMethod, error)
	// GetByProviderIdentity resolves an external (method, provider id) pair
	// across all accounts.
	GetByProviderIdentity(ctx context.Context, method Method, providerID string) (*AuthMethod, error)
	// SetPrimary clears every primary flag for the account and sets the
	// targeted row inside a single transaction.
	SetPrimary(ctx context.Context, accountID uint, method Method, providerID *string) error
	Deactivate(ctx context.Context, accountID uint, method Method, providerID *string) error
}

// OTPRepository persists one-time passcodes. Multiple outstanding codes per
// (email, purpose) coexist; any unexpired, unused one can still verify.
type OTPRepository interface {
	Create(ctx context.Context, code *OTPCode) error
	// GetLatestMatching returns the newest unused, unexpired record for
	// (email, code, purpose), or (nil, nil).
	GetLatestMatching(ctx context.Context, email, code string, purpose OTPPurpose) (*OTPCode, error)
	// GetLatestOutstanding returns the newest unused, unexpired record for
	// (email, purpose) regardless of code value, or (nil, nil).
	GetLatestOutstanding(ctx context.Context, email string, purpose OTPPurpose) (*OTPCode, error)
	// MarkUsed flips used=false to true for the given record and reports
	// whether this call performed the flip. At-most-once semantics depend on
	// the conditional update.
	MarkUsed(ctx context.Context, id uint) (bool, error)
	IncrementAttempts(ctx context.Context, id uint) error
	// CountCreatedSince counts records for (email, purpose) created after
	// the given instant, regardless of used or expired state.
	CountCreatedSince(ctx context.Context, email string, purpose OTPPurpose, since time.Time) (int64, error)
	// DeleteExpiredBefore removes records whose expiry predates the cutoff.
	// Only the maintenance sweep calls this.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// StateTokenRepository persists OAuth state tokens.
type StateTokenRepository interface {
	Create(ctx context.Context, token *StateToken) error
	// Consume atomically validates and marks the token used. A reused,
	// expired or unknown token returns ErrStateTokenInvalid.
	Consume(ctx context.Context, token string, provider Origin) (*StateToken, error)
	// DeleteExpired removes used and expired tokens; called by the sweep.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
