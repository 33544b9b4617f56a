package authorization

import (
	"github.com/gin-gonic/gin"

	"seedfund/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// RequireRole aborts with 403 unless the authenticated account holds one of
// the given roles. Admin always passes.
func RequireRole(roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := ParseRole(c.GetString(constants.ContextKeyRole))
		if !allowed[role] && !role.IsAdmin() {
			c.JSON(403, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(accountID uint, role Role, resource OwnedResource) bool {
	if role.IsAdmin() {
		return true
	}
	return accountID == resource.GetOwnerID()
}

func CanAccessResourceByOwnerID(accountID uint, role Role, resourceOwnerID uint) bool {
	if role.IsAdmin() {
		return true
	}
	return accountID == resourceOwnerID
}
