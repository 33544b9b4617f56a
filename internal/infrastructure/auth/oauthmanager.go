package auth

import (
	"context"
	"errors"
	"sync"

	"seedfund/internal/shared/config"
	"seedfund/internal/shared/logger"
)

// ErrOAuthNotConfigured is returned when an OAuth provider has no credentials
var ErrOAuthNotConfigured = errors.New("oauth provider not configured")

// OAuthProvider is the common surface of all federation providers.
type OAuthProvider interface {
	Name() string
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

// OAuthManager holds the configured providers. Providers with empty
// credentials are not registered and lookups for them fail.
type OAuthManager struct {
	mu        sync.RWMutex
	providers map[string]OAuthProvider
	logger    logger.Interface
}

func NewOAuthManager(cfg *config.OAuthConfig, logger logger.Interface) *OAuthManager {
	m := &OAuthManager{
		providers: make(map[string]OAuthProvider),
		logger:    logger,
	}

	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		m.providers["google"] = NewGoogleOAuthClient(cfg.Google)
		logger.Infow("google oauth client initialized",
			"redirect_url", cfg.Google.RedirectURL)
	} else {
		logger.Debugw("google oauth client not configured")
	}

	if cfg.LinkedIn.ClientID != "" && cfg.LinkedIn.ClientSecret != "" {
		m.providers["linkedin"] = NewLinkedInOAuthClient(cfg.LinkedIn)
		logger.Infow("linkedin oauth client initialized",
			"redirect_url", cfg.LinkedIn.RedirectURL)
	} else {
		logger.Debugw("linkedin oauth client not configured")
	}

	return m
}

// GetProvider returns the named provider or ErrOAuthNotConfigured.
func (m *OAuthManager) GetProvider(name string) (OAuthProvider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	provider, ok := m.providers[name]
	if !ok {
		return nil, ErrOAuthNotConfigured
	}
	return provider, nil
}

// IsEnabled checks whether the named provider is configured.
func (m *OAuthManager) IsEnabled(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.providers[name]
	return ok
}
