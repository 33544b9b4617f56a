package account

import (
	"time"
)

// DefaultStateTokenTTL bounds the OAuth redirect round trip.
const DefaultStateTokenTTL = 15 * time.Minute

// StateToken is the single-use anti-CSRF value round-tripped through an
// OAuth provider redirect. Consumption must atomically check validity and
// mark the token used.
type StateToken struct {
	ID          uint
	Token       string
	Provider    Origin
	RedirectURL *string
	Used        bool
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// NewStateToken wraps a pre-generated random token value for a provider.
func NewStateToken(token string, provider Origin, redirectURL *string, ttl time.Duration) *StateToken {
	if ttl <= 0 {
		ttl = DefaultStateTokenTTL
	}
	now := time.Now().UTC()
	return &StateToken{
		Token:       token,
		Provider:    provider,
		RedirectURL: redirectURL,
		Used:        false,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

// IsValid reports whether the token is still consumable.
func (t *StateToken) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
