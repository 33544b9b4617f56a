package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
)

func validStateToken(provider account.Origin) *account.StateToken {
	return account.NewStateToken("state-value", provider, nil, account.DefaultStateTokenTTL)
}

func googleUserInfo() *OAuthUserInfo {
	return &OAuthUserInfo{
		Email:         "oauth.user@example.com",
		FirstName:     "OAuth",
		LastName:      "User",
		Picture:       "https://lh3.example.com/photo.jpg",
		EmailVerified: true,
		Provider:      "google",
		ProviderID:    "google-sub-123",
	}
}

func newCallbackUseCase(
	accountRepo *mockAccountRepository,
	authMethodRepo *mockAuthMethodRepository,
	stateTokenRepo *mockStateTokenRepository,
	resolver *mockOAuthClientResolver,
) *HandleOAuthCallbackUseCase {
	return NewHandleOAuthCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo,
		resolver, &mockTokenService{}, &mockTransactionManager{}, nopLogger{})
}

func TestHandleOAuthCallback_UnknownProvider(t *testing.T) {
	uc := newCallbackUseCase(&mockAccountRepository{}, &mockAuthMethodRepository{},
		&mockStateTokenRepository{}, &mockOAuthClientResolver{})

	_, err := uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "facebook",
		Code:     "code",
		State:    "state-value",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)
}

func TestHandleOAuthCallback_InvalidStateRefused(t *testing.T) {
	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return nil, account.ErrStateTokenInvalid
		},
	}
	exchanged := false
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				ExchangeCodeFunc: func(ctx context.Context, code string) (string, error) {
					exchanged = true
					return "token", nil
				},
			}, nil
		},
	}
	uc := newCallbackUseCase(&mockAccountRepository{}, &mockAuthMethodRepository{}, stateTokenRepo, resolver)

	_, err := uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "code",
		State:    "replayed-state",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
	// The state check happens before any provider round trip.
	assert.False(t, exchanged)
}

func TestHandleOAuthCallback_NewIdentityCreatesAccount(t *testing.T) {
	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				GetUserInfoFunc: func(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
					return googleUserInfo(), nil
				},
			}, nil
		},
	}
	var createdAccount *account.Account
	accountRepo := &mockAccountRepository{
		CreateFunc: func(ctx context.Context, acct *account.Account) error {
			createdAccount = acct
			return acct.SetID(10)
		},
	}
	var createdMethod *account.AuthMethod
	authMethodRepo := &mockAuthMethodRepository{
		CreateFunc: func(ctx context.Context, m *account.AuthMethod) error {
			createdMethod = m
			return nil
		},
	}
	uc := newCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo, resolver)

	result, err := uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "code",
		State:    "state-value",
	})

	require.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.NotEmpty(t, result.AccessToken)

	require.NotNil(t, createdAccount)
	assert.True(t, createdAccount.IsVerified())
	assert.Equal(t, account.OriginGoogle, createdAccount.Origin())
	assert.Equal(t, "unassigned", createdAccount.Role().String())

	require.NotNil(t, createdMethod)
	assert.Equal(t, account.MethodGoogle, createdMethod.Method)
	assert.True(t, createdMethod.IsPrimary)
	require.NotNil(t, createdMethod.ProviderID)
	assert.Equal(t, "google-sub-123", *createdMethod.ProviderID)
}

// A second callback for an already linked identity resolves to the same
// account without creating any rows.
func TestHandleOAuthCallback_LinkedIdentityIsIdempotent(t *testing.T) {
	acct := buildAccount(accountFixture{
		ID:         10,
		Email:      "oauth.user@example.com",
		IsVerified: true,
		IsActive:   true,
		Origin:     account.OriginGoogle,
	})
	linked, err := account.NewAuthMethod(acct.ID(), account.MethodGoogle, strPtr("google-sub-123"), strPtr(acct.Email()))
	require.NoError(t, err)

	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				GetUserInfoFunc: func(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
					return googleUserInfo(), nil
				},
			}, nil
		},
	}
	accountCreates := 0
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return acct, nil
		},
		CreateFunc: func(ctx context.Context, a *account.Account) error {
			accountCreates++
			return nil
		},
	}
	methodCreates := 0
	authMethodRepo := &mockAuthMethodRepository{
		GetByProviderIdentityFunc: func(ctx context.Context, method account.Method, providerID string) (*account.AuthMethod, error) {
			return linked, nil
		},
		CreateFunc: func(ctx context.Context, m *account.AuthMethod) error {
			methodCreates++
			return nil
		},
	}
	uc := newCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo, resolver)

	cmd := HandleOAuthCallbackCommand{Provider: "google", Code: "code", State: "state-value"}

	for i := 0; i < 2; i++ {
		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.False(t, result.IsNewUser)
		assert.Equal(t, acct.ID(), result.Account.ID())
	}

	assert.Zero(t, accountCreates)
	assert.Zero(t, methodCreates)
}

func TestHandleOAuthCallback_PasswordOriginConflict(t *testing.T) {
	acct := buildAccount(accountFixture{
		ID:           10,
		Email:        "oauth.user@example.com",
		PasswordHash: strPtr("h"),
		IsVerified:   true,
		IsActive:     true,
		Origin:       account.OriginPassword,
	})
	passwordMethod, err := account.NewAuthMethod(acct.ID(), account.MethodPassword, nil, nil)
	require.NoError(t, err)

	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				GetUserInfoFunc: func(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
					return googleUserInfo(), nil
				},
			}, nil
		},
	}
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	authMethodRepo := &mockAuthMethodRepository{
		ListActiveByAccountFunc: func(ctx context.Context, accountID uint) ([]*account.AuthMethod, error) {
			return []*account.AuthMethod{passwordMethod}, nil
		},
	}
	uc := newCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo, resolver)

	_, err = uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "code",
		State:    "state-value",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeOriginConflict, errors.GetAppError(err).Type)
}

func TestHandleOAuthCallback_LinksProviderToOAuthOriginAccount(t *testing.T) {
	acct := buildAccount(accountFixture{
		ID:         10,
		Email:      "oauth.user@example.com",
		IsVerified: true,
		IsActive:   true,
		Origin:     account.OriginLinkedIn,
	})

	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				GetUserInfoFunc: func(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
					return googleUserInfo(), nil
				},
			}, nil
		},
	}
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	var createdMethod *account.AuthMethod
	authMethodRepo := &mockAuthMethodRepository{
		CreateFunc: func(ctx context.Context, m *account.AuthMethod) error {
			createdMethod = m
			return nil
		},
	}
	uc := newCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo, resolver)

	result, err := uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "code",
		State:    "state-value",
	})

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	require.NotNil(t, createdMethod)
	assert.Equal(t, account.MethodGoogle, createdMethod.Method)
	assert.False(t, createdMethod.IsPrimary)
}

// When the unique index catches another account claiming the identity
// between the lookup and the insert, the caller sees a conflict.
func TestHandleOAuthCallback_IdentityClaimedByAnotherAccount(t *testing.T) {
	acct := buildAccount(accountFixture{
		ID:         10,
		Email:      "oauth.user@example.com",
		IsVerified: true,
		IsActive:   true,
		Origin:     account.OriginLinkedIn,
	})

	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				GetUserInfoFunc: func(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
					return googleUserInfo(), nil
				},
			}, nil
		},
	}
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acct, nil
		},
	}
	authMethodRepo := &mockAuthMethodRepository{
		CreateFunc: func(ctx context.Context, m *account.AuthMethod) error {
			return stderrors.New("Error 1062 (23000): Duplicate entry 'google-google-sub-123' for key 'idx_auth_methods_provider_identity'")
		},
	}
	uc := newCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo, resolver)

	_, err := uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "code",
		State:    "state-value",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetAppError(err).Type)
}

func TestHandleOAuthCallback_DeactivatedAccountBlocked(t *testing.T) {
	acct := buildAccount(accountFixture{
		ID:         10,
		Email:      "oauth.user@example.com",
		IsVerified: true,
		IsActive:   false,
		Origin:     account.OriginGoogle,
	})
	linked, err := account.NewAuthMethod(acct.ID(), account.MethodGoogle, strPtr("google-sub-123"), nil)
	require.NoError(t, err)

	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				GetUserInfoFunc: func(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
					return googleUserInfo(), nil
				},
			}, nil
		},
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return acct, nil
		},
	}
	authMethodRepo := &mockAuthMethodRepository{
		GetByProviderIdentityFunc: func(ctx context.Context, method account.Method, providerID string) (*account.AuthMethod, error) {
			return linked, nil
		},
	}
	uc := newCallbackUseCase(accountRepo, authMethodRepo, stateTokenRepo, resolver)

	_, err = uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "code",
		State:    "state-value",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeStateGate, errors.GetAppError(err).Type)
}

func TestHandleOAuthCallback_ExchangeFailure(t *testing.T) {
	stateTokenRepo := &mockStateTokenRepository{
		ConsumeFunc: func(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
			return validStateToken(provider), nil
		},
	}
	resolver := &mockOAuthClientResolver{
		GetClientFunc: func(provider string) (OAuthClient, error) {
			return &mockOAuthClient{
				ExchangeCodeFunc: func(ctx context.Context, code string) (string, error) {
					return "", assert.AnError
				},
			}, nil
		},
	}
	uc := newCallbackUseCase(&mockAccountRepository{}, &mockAuthMethodRepository{}, stateTokenRepo, resolver)

	_, err := uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "google",
		Code:     "bad-code",
		State:    "state-value",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeOAuthError, errors.GetAppError(err).Type)
}

func TestInitiateOAuthLogin_StoresStateBeforeRedirect(t *testing.T) {
	var stored *account.StateToken
	stateTokenRepo := &mockStateTokenRepository{
		CreateFunc: func(ctx context.Context, token *account.StateToken) error {
			stored = token
			return nil
		},
	}
	uc := NewInitiateOAuthLoginUseCase(stateTokenRepo, &mockOAuthClientResolver{},
		&mockStateGenerator{}, 0, nopLogger{})

	result, err := uc.Execute(context.Background(), InitiateOAuthLoginCommand{Provider: "google"})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "random-state-value", stored.Token)
	assert.Equal(t, account.OriginGoogle, stored.Provider)
	assert.True(t, stored.IsValid(time.Now().UTC()))
	assert.Contains(t, result.AuthURL, "state=random-state-value")
	assert.Equal(t, "random-state-value", result.State)
}

func TestInitiateOAuthLogin_UnknownProvider(t *testing.T) {
	uc := NewInitiateOAuthLoginUseCase(&mockStateTokenRepository{}, &mockOAuthClientResolver{},
		&mockStateGenerator{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), InitiateOAuthLoginCommand{Provider: "github"})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)
}
