package account

import (
	"fmt"
	"strings"
	"time"

	"seedfund/internal/shared/authorization"
)

// Origin identifies which credential method created the account.
type Origin string

const (
	OriginPassword Origin = "password"
	OriginGoogle   Origin = "google"
	OriginLinkedIn Origin = "linkedin"
)

// IsOAuth reports whether the account was created through a federated provider.
func (o Origin) IsOAuth() bool {
	return o == OriginGoogle || o == OriginLinkedIn
}

// ApprovalStatus is the admin-controlled approval axis, independent from
// email verification.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Account is the aggregate root for a platform account. Lifecycle state is
// derived from its fields by LifecycleState; all gating logic must read that
// one function instead of re-deriving conditions at each call site.
type Account struct {
	id              uint
	email           string
	passwordHash    *string
	role            authorization.Role
	isVerified      bool
	verifiedAt      *time.Time
	approvalStatus  ApprovalStatus
	rejectionReason *string
	profileStep     string
	isActive        bool
	origin          Origin
	profile         Profile
	createdAt       time.Time
	updatedAt       time.Time
	version         int
}

// NormalizeEmail lowercases an email for case-insensitive comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewPasswordAccount creates an account for a password signup. The account
// starts unverified with approval pending.
func NewPasswordAccount(email string, role authorization.Role, profile Profile) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if !role.IsSelectable() {
		return nil, fmt.Errorf("role %q cannot be selected at signup", role)
	}

	now := time.Now().UTC()
	return &Account{
		email:          email,
		role:           role,
		isVerified:     false,
		approvalStatus: ApprovalPending,
		profileStep:    StepVerification,
		isActive:       true,
		origin:         OriginPassword,
		profile:        profile,
		createdAt:      now,
		updatedAt:      now,
		version:        1,
	}, nil
}

// NewOAuthAccount creates an account for a federated first login. OAuth
// providers have already verified the email, so the account starts verified,
// with the transient unassigned role until the user picks one.
func NewOAuthAccount(email string, origin Origin, profile Profile) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if !origin.IsOAuth() {
		return nil, fmt.Errorf("origin %q is not a federated provider", origin)
	}

	now := time.Now().UTC()
	return &Account{
		email:          email,
		role:           authorization.RoleUnassigned,
		isVerified:     true,
		verifiedAt:     &now,
		approvalStatus: ApprovalPending,
		profileStep:    StepApproval,
		isActive:       true,
		origin:         origin,
		profile:        profile,
		createdAt:      now,
		updatedAt:      now,
		version:        1,
	}, nil
}

// ReconstructData carries persisted field values back into the aggregate.
type ReconstructData struct {
	ID              uint
	Email           string
	PasswordHash    *string
	Role            authorization.Role
	IsVerified      bool
	VerifiedAt      *time.Time
	ApprovalStatus  ApprovalStatus
	RejectionReason *string
	ProfileStep     string
	IsActive        bool
	Origin          Origin
	Profile         Profile
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// Reconstruct rebuilds an account from persistence.
func Reconstruct(data ReconstructData) (*Account, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if data.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return &Account{
		id:              data.ID,
		email:           NormalizeEmail(data.Email),
		passwordHash:    data.PasswordHash,
		role:            data.Role,
		isVerified:      data.IsVerified,
		verifiedAt:      data.VerifiedAt,
		approvalStatus:  data.ApprovalStatus,
		rejectionReason: data.RejectionReason,
		profileStep:     data.ProfileStep,
		isActive:        data.IsActive,
		origin:          data.Origin,
		profile:         data.Profile,
		createdAt:       data.CreatedAt,
		updatedAt:       data.UpdatedAt,
		version:         data.Version,
	}, nil
}

func (a *Account) ID() uint                       { return a.id }
func (a *Account) Email() string                  { return a.email }
func (a *Account) PasswordHash() *string          { return a.passwordHash }
func (a *Account) Role() authorization.Role       { return a.role }
func (a *Account) IsVerified() bool               { return a.isVerified }
func (a *Account) VerifiedAt() *time.Time         { return a.verifiedAt }
func (a *Account) ApprovalStatus() ApprovalStatus { return a.approvalStatus }
func (a *Account) RejectionReason() *string       { return a.rejectionReason }
func (a *Account) ProfileStep() string            { return a.profileStep }
func (a *Account) IsActive() bool                 { return a.isActive }
func (a *Account) Origin() Origin                 { return a.origin }
func (a *Account) Profile() Profile               { return a.profile }
func (a *Account) CreatedAt() time.Time           { return a.createdAt }
func (a *Account) UpdatedAt() time.Time           { return a.updatedAt }
func (a *Account) Version() int                   { return a.version }

// HasPassword reports whether password login is available.
func (a *Account) HasPassword() bool {
	return a.passwordHash != nil && *a.passwordHash != ""
}

// SetID sets the account ID (only for persistence layer use)
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// MarkVerified records a successful email verification and advances the
// signup flow to the approval stage.
func (a *Account) MarkVerified() {
	if a.isVerified {
		return
	}
	now := time.Now().UTC()
	a.isVerified = true
	a.verifiedAt = &now
	if a.profileStep == StepVerification {
		a.profileStep = StepApproval
	}
	a.touch()
}

// SetPasswordHash replaces the stored password hash.
func (a *Account) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	a.passwordHash = &hash
	a.touch()
	return nil
}

// Approve flips the approval status to approved. Verification is untouched.
func (a *Account) Approve() {
	a.approvalStatus = ApprovalApproved
	a.rejectionReason = nil
	if a.profileStep == StepApproval {
		a.profileStep = StepProfile
	}
	a.touch()
}

// Reject flips the approval status to rejected with a reason the applicant
// can act on before resubmitting.
func (a *Account) Reject(reason string) {
	a.approvalStatus = ApprovalRejected
	if reason != "" {
		a.rejectionReason = &reason
	}
	a.touch()
}

// Resubmit overwrites profile fields and resets the application to pending.
// Only legal from the rejected state.
func (a *Account) Resubmit(profile Profile) error {
	if a.approvalStatus != ApprovalRejected {
		return ErrNotInRejectedState
	}
	a.profile = profile
	a.approvalStatus = ApprovalPending
	a.rejectionReason = nil
	a.touch()
	return nil
}

// SelectRole assigns a role to an account created through OAuth. Only legal
// while the role is still unassigned; approval stays pending for admin review.
func (a *Account) SelectRole(role authorization.Role) error {
	if a.role != authorization.RoleUnassigned {
		return ErrRoleAlreadySet
	}
	if !role.IsSelectable() {
		return fmt.Errorf("role %q cannot be selected", role)
	}
	a.role = role
	a.touch()
	return nil
}

// UpdateProfile replaces the stored profile fields.
func (a *Account) UpdateProfile(profile Profile) {
	a.profile = profile
	a.touch()
}

// CompleteProfile marks the multi-stage signup as finished.
func (a *Account) CompleteProfile() {
	a.profileStep = StepComplete
	a.touch()
}

// Deactivate soft-disables the account without deleting it.
func (a *Account) Deactivate() {
	a.isActive = false
	a.touch()
}

// Reactivate re-enables a soft-disabled account.
func (a *Account) Reactivate() {
	a.isActive = true
	a.touch()
}

func (a *Account) touch() {
	a.updatedAt = time.Now().UTC()
	a.version++
}
