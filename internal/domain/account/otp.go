package account

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPPurpose binds a code to the flow it was issued for.
type OTPPurpose string

const (
	OTPPurposeEmailVerification OTPPurpose = "email_verification"
	OTPPurposeLogin             OTPPurpose = "login"
	OTPPurposePasswordReset     OTPPurpose = "password_reset"
)

func (p OTPPurpose) IsValid() bool {
	switch p {
	case OTPPurposeEmailVerification, OTPPurposeLogin, OTPPurposePasswordReset:
		return true
	}
	return false
}

const (
	otpCodeDigits = 6

	// DefaultOTPTTL is how long a code stays verifiable.
	DefaultOTPTTL = 10 * time.Minute

	// MaxOTPAttempts is the failed-verification cap per code; a code at the
	// cap is invalid even if otherwise unexpired.
	MaxOTPAttempts = 5
)

// OTPCode is an ephemeral proof of email possession. Multiple outstanding
// codes may coexist for the same (email, purpose); verification always picks
// the newest usable one.
type OTPCode struct {
	ID        uint
	AccountID uint
	Email     string
	Code      string
	Purpose   OTPPurpose
	Used      bool
	Attempts  int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// GenerateOTPCode returns a uniformly random decimal code with leading zeros
// allowed, sourced from crypto/rand.
func GenerateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpCodeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", otpCodeDigits, n), nil
}

// NewOTPCode creates an unused code bound to (email, purpose) with the given TTL.
func NewOTPCode(accountID uint, email string, purpose OTPPurpose, ttl time.Duration) (*OTPCode, error) {
	if !purpose.IsValid() {
		return nil, fmt.Errorf("unknown OTP purpose %q", purpose)
	}
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}

	code, err := GenerateOTPCode()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &OTPCode{
		AccountID: accountID,
		Email:     NormalizeEmail(email),
		Code:      code,
		Purpose:   purpose,
		Used:      false,
		Attempts:  0,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the code's lifetime has passed.
func (o *OTPCode) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// IsVerifiable reports whether the code can still satisfy a verification:
// unused, unexpired, and under the attempt cap.
func (o *OTPCode) IsVerifiable(now time.Time) bool {
	return !o.Used && !o.IsExpired(now) && o.Attempts < MaxOTPAttempts
}
