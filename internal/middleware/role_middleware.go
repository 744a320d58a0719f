package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/core"
)

// RoleMiddleware gates routes on a required user role. The role is
// re-read from the user document on every request; no role claim is
// cached in the token, so a revoked role takes effect immediately.
type RoleMiddleware struct {
	users core.UserService
}

// NewRoleMiddleware creates a new RoleMiddleware instance.
func NewRoleMiddleware(users core.UserService) *RoleMiddleware {
	if users == nil {
		panic("RoleMiddleware requires a non-nil user service")
	}
	return &RoleMiddleware{users: users}
}

// Require returns middleware that rejects the request with 403 unless
// the authenticated user's stored role equals the expected role. Must
// run after AuthMiddleware.VerifyToken.
func (m *RoleMiddleware) Require(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: true, Message: "unauthorized access"})
			return
		}

		ok, err := m.users.HasRole(c.Request.Context(), email, role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: true, Message: "failed to verify role"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
			return
		}

		c.Next()
	}
}
