package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	"seedfund/internal/shared/config"
)

type LinkedInOAuthClient struct {
	config *oauth2.Config
}

// linkedinUserInfo is the OpenID Connect userinfo shape returned by
// https://api.linkedin.com/v2/userinfo.
type linkedinUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func NewLinkedInOAuthClient(cfg config.OAuthProviderConfig) *LinkedInOAuthClient {
	return &LinkedInOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     linkedin.Endpoint,
		},
	}
}

func (c *LinkedInOAuthClient) Name() string {
	return "linkedin"
}

func (c *LinkedInOAuthClient) GetAuthURL(state string) string {
	return c.config.AuthCodeURL(state)
}

func (c *LinkedInOAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, nil
}

func (c *LinkedInOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", "https://api.linkedin.com/v2/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{
		Timeout: httpClientTimeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var lInfo linkedinUserInfo
	if err := json.Unmarshal(body, &lInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info: %w", err)
	}

	return &OAuthUserInfo{
		Email:         lInfo.Email,
		FirstName:     lInfo.GivenName,
		LastName:      lInfo.FamilyName,
		Picture:       lInfo.Picture,
		EmailVerified: lInfo.EmailVerified,
		Provider:      "linkedin",
		ProviderID:    lInfo.Sub,
	}, nil
}
