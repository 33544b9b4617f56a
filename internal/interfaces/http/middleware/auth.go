package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seedfund/internal/infrastructure/auth"
	"seedfund/internal/shared/constants"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and stores the account identity in
// the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAccountID, claims.AccountID)
		c.Set(constants.ContextKeyEmail, claims.Email)
		c.Set(constants.ContextKeyRole, string(claims.Role))

		c.Next()
	}
}

// OptionalAuth populates identity when a valid token is present but never
// blocks the request.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err == nil {
			c.Set(constants.ContextKeyAccountID, claims.AccountID)
			c.Set(constants.ContextKeyEmail, claims.Email)
			c.Set(constants.ContextKeyRole, string(claims.Role))
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AccountID reads the authenticated account id set by RequireAuth.
func AccountID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyAccountID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
