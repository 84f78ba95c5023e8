package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Daninc24/myshop/internal/domain/identity"
)

// RequireRoles allows only callers whose token carries one of the given roles.
// It must run after JWTAuthMiddleware.
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := identity.Role(GetJWTRole(c))
		if _, ok := allowed[role]; !ok {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin allows only the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(identity.RoleAdmin)
}

// RequireOrderProcessor allows the roles that may list all orders and
// write order status values
func RequireOrderProcessor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identity.Role(GetJWTRole(c)).CanProcessOrders() {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequirePOSAccess allows the roles admitted to the POS reporting surface
func RequirePOSAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identity.Role(GetJWTRole(c)).HasPOSAccess() {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ERR_FORBIDDEN",
			"message": "Access to this resource is forbidden",
		},
	})
}
