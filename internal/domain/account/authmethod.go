package account

import (
	"fmt"
	"time"
)

// Method is a credential channel linkable to an account.
type Method string

const (
	MethodPassword Method = "password"
	MethodOTP      Method = "otp"
	MethodGoogle   Method = "google"
	MethodLinkedIn Method = "linkedin"
	MethodFacebook Method = "facebook"
	MethodGitHub   Method = "github"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodPassword, MethodOTP, MethodGoogle, MethodLinkedIn, MethodFacebook, MethodGitHub:
		return true
	}
	return false
}

// IsExternal reports whether the method is backed by an OAuth provider and
// therefore carries a provider subject id.
func (m Method) IsExternal() bool {
	switch m {
	case MethodGoogle, MethodLinkedIn, MethodFacebook, MethodGitHub:
		return true
	}
	return false
}

// MethodForOrigin maps an account origin to its credential method.
func MethodForOrigin(o Origin) Method {
	switch o {
	case OriginGoogle:
		return MethodGoogle
	case OriginLinkedIn:
		return MethodLinkedIn
	default:
		return MethodPassword
	}
}

// AuthMethod joins an account to a credential type. At most one method per
// account carries IsPrimary; a given (method, provider id) pair maps to at
// most one account.
type AuthMethod struct {
	ID            uint
	AccountID     uint
	Method        Method
	ProviderID    *string
	ProviderEmail *string
	IsPrimary     bool
	IsActive      bool
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastUsedAt    *time.Time
}

// NewAuthMethod creates an active, non-primary auth method record.
func NewAuthMethod(accountID uint, method Method, providerID, providerEmail *string) (*AuthMethod, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("unknown auth method %q", method)
	}
	if method.IsExternal() && (providerID == nil || *providerID == "") {
		return nil, fmt.Errorf("provider ID is required for %s", method)
	}

	now := time.Now().UTC()
	return &AuthMethod{
		AccountID:     accountID,
		Method:        method,
		ProviderID:    providerID,
		ProviderEmail: providerEmail,
		IsPrimary:     false,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CanLinkExternalIdentity decides whether an external identity may be linked
// to acct. acct is the account that owns the provider email (nil when no
// account does), identityOwner is the auth method row already holding the
// (method, provider id) pair anywhere in the system (nil when unclaimed), and
// activeMethods are acct's active methods.
//
// Password-originated accounts with no federated method refuse the link so an
// attacker controlling the provider side of an email cannot take over a
// password account.
func CanLinkExternalIdentity(acct *Account, activeMethods []*AuthMethod, identityOwner *AuthMethod, method Method) error {
	if acct == nil {
		return ErrNoAccountForEmail
	}
	if identityOwner != nil {
		if identityOwner.AccountID != acct.ID() {
			return ErrIdentityLinkedElsewhere
		}
		if identityOwner.IsActive {
			return ErrMethodAlreadyLinked
		}
	}
	if method.IsExternal() && acct.Origin() == OriginPassword {
		for _, m := range activeMethods {
			if m.Method.IsExternal() {
				return nil
			}
		}
		return ErrOriginConflict
	}
	return nil
}

// RecordUse stamps the method as just used for login.
func (m *AuthMethod) RecordUse() {
	now := time.Now().UTC()
	m.LastUsedAt = &now
	m.UpdatedAt = now
}

// Deactivate revokes the method without losing its history.
func (m *AuthMethod) Deactivate() {
	m.IsActive = false
	m.IsPrimary = false
	m.UpdatedAt = time.Now().UTC()
}

// Reactivate restores a previously revoked method.
func (m *AuthMethod) Reactivate() {
	m.IsActive = true
	m.UpdatedAt = time.Now().UTC()
}
