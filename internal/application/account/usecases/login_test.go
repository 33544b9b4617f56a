package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
)

func newLoginUseCase(
	accountRepo *mockAccountRepository,
	authMethodRepo *mockAuthMethodRepository,
	otpService *mockOTPService,
	hasher *mockPasswordHasher,
	tokenService *mockTokenService,
) *LoginUseCase {
	return NewLoginUseCase(accountRepo, authMethodRepo, otpService, hasher, tokenService, nopLogger{})
}

func TestLoginUseCase_UnknownEmailLooksLikeBadCredential(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return nil, nil
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, &mockOTPService{}, &mockPasswordHasher{}, &mockTokenService{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:      "nobody@example.com",
		Credential: "whatever",
		Method:     account.MethodPassword,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, appErr.Type)
}

func TestLoginUseCase_RejectsUnknownMethod(t *testing.T) {
	uc := newLoginUseCase(&mockAccountRepository{}, &mockAuthMethodRepository{}, &mockOTPService{}, &mockPasswordHasher{}, &mockTokenService{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:      "user@example.com",
		Credential: "x",
		Method:     account.MethodGoogle,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)
}

func TestLoginUseCase_PasswordMismatch(t *testing.T) {
	acct := buildAccount(accountFixture{
		PasswordHash: strPtr("stored-hash"),
		IsVerified:   true,
		IsActive:     true,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	hasher := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.NewInvalidCredentialsError()
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, &mockOTPService{}, hasher, &mockTokenService{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "wrong-password",
		Method:     account.MethodPassword,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, errors.GetAppError(err).Type)
}

func TestLoginUseCase_OAuthOnlyAccountHasNoPassword(t *testing.T) {
	acct := buildAccount(accountFixture{
		IsVerified: true,
		IsActive:   true,
		Origin:     account.OriginGoogle,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, &mockOTPService{}, &mockPasswordHasher{}, &mockTokenService{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "password",
		Method:     account.MethodPassword,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypePasswordNotSet, errors.GetAppError(err).Type)
}

// The lifecycle gates apply only after the credential checks out, in a fixed
// order: deactivation beats verification beats rejection beats approval. An
// account in several blocked states at once always reports the same reason.
func TestLoginUseCase_GateOrder(t *testing.T) {
	tests := []struct {
		name        string
		fixture     accountFixture
		wantMessage string
	}{
		{
			name: "deactivated wins over everything",
			fixture: accountFixture{
				PasswordHash:   strPtr("h"),
				IsVerified:     false,
				ApprovalStatus: account.ApprovalRejected,
				IsActive:       false,
			},
			wantMessage: "Account is deactivated",
		},
		{
			name: "unverified wins over rejection",
			fixture: accountFixture{
				PasswordHash:   strPtr("h"),
				IsVerified:     false,
				ApprovalStatus: account.ApprovalRejected,
				IsActive:       true,
			},
			wantMessage: "Email not verified",
		},
		{
			name: "rejection wins over pending approval",
			fixture: accountFixture{
				PasswordHash:   strPtr("h"),
				IsVerified:     true,
				ApprovalStatus: account.ApprovalRejected,
				IsActive:       true,
			},
			wantMessage: "Application was rejected",
		},
		{
			name: "pending approval blocks last",
			fixture: accountFixture{
				PasswordHash:   strPtr("h"),
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
			uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, &mockOTPService{}, &mockPasswordHasher{}, &mockTokenService{})

			result, err := uc.Execute(context.Background(), LoginCommand{
				Email:      acct.Email(),
				Credential: "correct-password",
				Method:     account.MethodPassword,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeStateGate, appErr.Type)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}
}

func TestLoginUseCase_UnverifiedLoginResendsVerificationCode(t *testing.T) {
	acct := buildAccount(accountFixture{
		PasswordHash: strPtr("h"),
		IsVerified:   false,
		IsActive:     true,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	var issuedPurpose account.OTPPurpose
	otpService := &mockOTPService{
		IssueFunc: func(ctx context.Context, accountID uint, email, displayName string, purpose account.OTPPurpose) error {
			issuedPurpose = purpose
			return nil
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, otpService, &mockPasswordHasher{}, &mockTokenService{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "correct-password",
		Method:     account.MethodPassword,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeStateGate, errors.GetAppError(err).Type)
	assert.Equal(t, account.OTPPurposeEmailVerification, issuedPurpose)
}

func TestLoginUseCase_WrongCredentialDoesNotResendVerification(t *testing.T) {
	acct := buildAccount(accountFixture{
		PasswordHash: strPtr("h"),
		IsVerified:   false,
		IsActive:     true,
	})
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
	hasher := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.NewInvalidCredentialsError()
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, otpService, hasher, &mockTokenService{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "wrong",
		Method:     account.MethodPassword,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, errors.GetAppError(err).Type)
	assert.False(t, issued)
}

func TestLoginUseCase_PasswordSuccess(t *testing.T) {
	acct := buildAccount(accountFixture{
		PasswordHash: strPtr("h"),
		IsVerified:   true,
		IsActive:     true,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	methodRecord, err := account.NewAuthMethod(acct.ID(), account.MethodPassword, nil, nil)
	require.NoError(t, err)
	var updated *account.AuthMethod
	authMethodRepo := &mockAuthMethodRepository{
		GetByAccountAndMethodFunc: func(ctx context.Context, accountID uint, method account.Method, providerID *string) (*account.AuthMethod, error) {
			return methodRecord, nil
		},
		UpdateFunc: func(ctx context.Context, m *account.AuthMethod) error {
			updated = m
			return nil
		},
	}
	uc := newLoginUseCase(accountRepo, authMethodRepo, &mockOTPService{}, &mockPasswordHasher{}, &mockTokenService{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "correct-password",
		Method:     account.MethodPassword,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, acct.ID(), result.Account.ID())
	require.NotNil(t, updated)
	assert.NotNil(t, updated.LastUsedAt)
}

func TestLoginUseCase_OTPMethodDelegatesVerification(t *testing.T) {
	acct := buildAccount(accountFixture{
		IsVerified: true,
		IsActive:   true,
		Origin:     account.OriginGoogle,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	var verifiedPurpose account.OTPPurpose
	otpService := &mockOTPService{
		VerifyFunc: func(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			verifiedPurpose = purpose
			return &account.OTPCode{Email: email, Code: code, Purpose: purpose}, nil
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, otpService, &mockPasswordHasher{}, &mockTokenService{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "123456",
		Method:     account.MethodOTP,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, account.OTPPurposeLogin, verifiedPurpose)
}

func TestLoginUseCase_OTPVerificationFailurePropagates(t *testing.T) {
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
		VerifyFunc: func(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return nil, errors.NewInvalidOrExpiredCodeError()
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, otpService, &mockPasswordHasher{}, &mockTokenService{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:      acct.Email(),
		Credential: "000000",
		Method:     account.MethodOTP,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
}

// Approval flips the gate: the same credential that was refused with a
// pending-approval reason succeeds once an admin approves the account.
func TestLoginUseCase_ApprovalUnblocksLogin(t *testing.T) {
	acct := buildAccount(accountFixture{
		PasswordHash:   strPtr("h"),
		IsVerified:     true,
		ApprovalStatus: account.ApprovalPending,
		IsActive:       true,
	})
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	uc := newLoginUseCase(accountRepo, &mockAuthMethodRepository{}, &mockOTPService{}, &mockPasswordHasher{}, &mockTokenService{})

	cmd := LoginCommand{
		Email:      acct.Email(),
		Credential: "correct-password",
		Method:     account.MethodPassword,
	}

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.Equal(t, "Account is pending approval", errors.GetAppError(err).Message)

	acct.Approve()

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}
