package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/auth"
)

// ContextEmailKey is the Gin context key holding the verified token
// email for downstream handlers.
const ContextEmailKey = "userEmail"

// ErrorResponse mirrors the API error shape. Defined locally so the
// middleware package does not import internal/api.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// AuthMiddleware provides Gin middleware for bearer-token
// authentication.
type AuthMiddleware struct {
	verifier *auth.TokenIssuer
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier *auth.TokenIssuer) *AuthMiddleware {
	if verifier == nil {
		panic("AuthMiddleware requires a non-nil token verifier")
	}
	return &AuthMiddleware{verifier: verifier}
}

// VerifyToken verifies the Authorization bearer token and stores the
// decoded email in the request context. Requests without a valid token
// are rejected with 401 before reaching any handler.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: true, Message: "unauthorized access"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: true, Message: "unauthorized access"})
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: true, Message: "unauthorized access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}
