package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/auth"
	"prodrawing-backend-go/internal/models"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	issuer *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// IssueToken handles POST /jwt: it signs the submitted identity payload
// into a bearer token with a fixed one hour expiry.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.issuer.Issue(req.Email, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
