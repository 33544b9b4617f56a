package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeCodeInvalid        ErrorType = "code_invalid"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypePasswordNotSet     ErrorType = "password_not_set"
	ErrorTypeOAuthError         ErrorType = "oauth_error"
	ErrorTypeOriginConflict     ErrorType = "origin_conflict"
)

// AuthError represents authentication-specific errors with enhanced security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Some auth errors (like invalid credentials) are expected and don't need error-level logging.
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message must not reveal whether the email or the secret was wrong,
// nor whether the email is registered at all.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or credentials",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true, // track for brute force detection
	}
}

// NewInvalidOrExpiredCodeError creates an error for a one-time passcode that
// did not match, has expired, was already used, or exhausted its attempts.
// All of those cases return the same message.
func NewInvalidOrExpiredCodeError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeCodeInvalid,
			Message: "Invalid or expired code",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewTokenExpiredError creates an error for expired signed tokens
func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: fmt.Sprintf("%s has expired", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewTokenInvalidError creates an error for malformed or tampered tokens
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("Invalid %s", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "Token is invalid or has been tampered with",
		},
		ShouldLog:     true, // may indicate tampering
		SecurityEvent: true,
	}
}

// NewPasswordNotSetError creates an error when password login is not available.
// This typically happens for OAuth-only accounts.
func NewPasswordNotSetError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypePasswordNotSet,
			Message: "Password login not available",
			Code:    http.StatusBadRequest,
			Details: "This account uses a social login provider",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewOAuthError creates an error for OAuth-related failures
func NewOAuthError(provider string, stage string, details ...string) *AuthError {
	detail := fmt.Sprintf("OAuth authentication failed at %s stage", stage)
	if len(details) > 0 {
		detail = details[0]
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeOAuthError,
			Message: fmt.Sprintf("OAuth authentication failed with %s", provider),
			Code:    http.StatusBadGateway,
			Details: detail,
		},
		ShouldLog:     true, // external service issues should be logged
		SecurityEvent: false,
	}
}

// NewOriginConflictError creates an error for an OAuth login against an
// account that was created with a password and never linked this provider.
// The caller must send the user to password login instead of merging identities.
func NewOriginConflictError(provider string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeOriginConflict,
			Message: "An account with this email already exists",
			Code:    http.StatusConflict,
			Details: fmt.Sprintf("Sign in with your password instead of %s", provider),
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors via errors.As)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged.
// This helps reduce noise in logs from expected auth failures.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
