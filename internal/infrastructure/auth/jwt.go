package auth

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/errors"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carried by both token classes. Validity is purely a function of
// signature and expiry; there is no server-side revocation.
type Claims struct {
	AccountID uint               `json:"account_id"`
	Email     string             `json:"email"`
	Role      authorization.Role `json:"role"`
	TokenType TokenType          `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService signs and validates the access/refresh token pair. Each token
// class is signed with its own secret so a leaked refresh secret cannot mint
// access tokens and vice versa.
type JWTService struct {
	accessSecret   []byte
	refreshSecret  []byte
	accessExpHours int
	refreshExpDays int
}

func NewJWTService(accessSecret, refreshSecret string, accessExpHours, refreshExpDays int) *JWTService {
	return &JWTService{
		accessSecret:   []byte(accessSecret),
		refreshSecret:  []byte(refreshSecret),
		accessExpHours: accessExpHours,
		refreshExpDays: refreshExpDays,
	}
}

// Generate mints a token pair from an account snapshot.
func (s *JWTService) Generate(accountID uint, email string, role authorization.Role) (*TokenPair, error) {
	now := time.Now().UTC()

	accessToken, err := s.sign(accountID, email, role, TokenTypeAccess, now,
		now.Add(time.Duration(s.accessExpHours)*time.Hour), s.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.sign(accountID, email, role, TokenTypeRefresh, now,
		now.Add(time.Duration(s.refreshExpDays)*24*time.Hour), s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpHours) * 3600,
	}, nil
}

func (s *JWTService) sign(accountID uint, email string, role authorization.Role, tokenType TokenType, now, exp time.Time, secret []byte) (string, error) {
	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify parses a token against the expected class's secret and returns the
// embedded claims. Failures are classified: Expired, SignatureInvalid, or
// Malformed (which also covers a token of the wrong class).
func (s *JWTService) Verify(tokenString string, expected TokenType) (*Claims, error) {
	secret := s.accessSecret
	if expected == TokenTypeRefresh {
		secret = s.refreshSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		switch {
		case stderrors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.NewTokenExpiredError(string(expected) + " token")
		case stderrors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, errors.NewTokenInvalidError(string(expected) + " token")
		default:
			return nil, errors.NewTokenInvalidError(string(expected) + " token")
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewTokenInvalidError(string(expected) + " token")
	}

	if claims.TokenType != expected {
		return nil, errors.NewTokenInvalidError(string(expected) + " token")
	}

	return claims, nil
}

// Refresh validates a refresh token and mints a fresh pair with the same
// identity claims.
func (s *JWTService) Refresh(refreshTokenString string) (*TokenPair, error) {
	claims, err := s.Verify(refreshTokenString, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return s.Generate(claims.AccountID, claims.Email, claims.Role)
}

// AccessExpHours returns the access token lifetime in hours.
func (s *JWTService) AccessExpHours() int {
	return s.accessExpHours
}
