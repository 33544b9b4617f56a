package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
)

func TestRequestLoginOTPUseCase_UnknownEmailLooksLikeBadCredential(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return nil, nil
		},
	}
	uc := NewRequestLoginOTPUseCase(accountRepo, &mockOTPService{}, nopLogger{})

	err := uc.Execute(context.Background(), RequestLoginOTPCommand{Email: "nobody@example.com"})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, errors.GetAppError(err).Type)
}

// A login passcode is only issued for an account that could complete the
// login. Any lifecycle gate blocks the request with its specific reason and
// no code is created.
func TestRequestLoginOTPUseCase_GatedAccountGetsNoCode(t *testing.T) {
	tests := []struct {
		name        string
		fixture     accountFixture
		wantMessage string
	}{
		{
			name: "deactivated",
			fixture: accountFixture{
				IsVerified: true,
				IsActive:   false,
			},
			wantMessage: "Account is deactivated",
		},
		{
			name: "unverified",
			fixture: accountFixture{
				IsVerified: false,
				IsActive:   true,
			},
			wantMessage: "Email not verified",
		},
		{
			name: "rejected",
			fixture: accountFixture{
				IsVerified:     true,
				ApprovalStatus: account.ApprovalRejected,
				IsActive:       true,
			},
			wantMessage: "Application was rejected",
		},
		{
			name: "pending approval",
			fixture: accountFixture{
				IsVerified:     true,
				ApprovalStatus: account.ApprovalPending,
				IsActive:       true,
			},
			wantMessage: "Account is pending approval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := buildAccount(tt.fixture)
			accountRepo := &mockAccountRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
					return acct, nil
				},
			}
			issued := false
			otpService := &mockOTPService{
				IssueFunc: func(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error {
					issued = true
					return nil
				},
			}
			uc := NewRequestLoginOTPUseCase(accountRepo, otpService, nopLogger{})

			err := uc.Execute(context.Background(), RequestLoginOTPCommand{Email: acct.Email()})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeStateGate, appErr.Type)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			assert.False(t, issued)
		})
	}
}

func TestRequestLoginOTPUseCase_IssuesLoginCode(t *testing.T) {
	acct := buildAccount(accountFixture{
		IsVerified: true,
		IsActive:   true,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	var issuedPurpose account.OTPPurpose
	var issuedAccountID uint
	otpService := &mockOTPService{
		IssueFunc: func(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error {
			issuedAccountID = accountID
			issuedPurpose = purpose
			return nil
		},
	}
	uc := NewRequestLoginOTPUseCase(accountRepo, otpService, nopLogger{})

	err := uc.Execute(context.Background(), RequestLoginOTPCommand{Email: acct.Email()})

	require.NoError(t, err)
	assert.Equal(t, acct.ID(), issuedAccountID)
	assert.Equal(t, account.OTPPurposeLogin, issuedPurpose)
}

func TestRequestLoginOTPUseCase_RateLimitPropagates(t *testing.T) {
	acct := buildAccount(accountFixture{
		IsVerified: true,
		IsActive:   true,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	otpService := &mockOTPService{
		IssueFunc: func(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error {
			return errors.NewRateLimitError()
		},
	}
	uc := NewRequestLoginOTPUseCase(accountRepo, otpService, nopLogger{})

	err := uc.Execute(context.Background(), RequestLoginOTPCommand{Email: acct.Email()})

	require.Error(t, err)
	assert.True(t, errors.IsRateLimitError(err))
}
