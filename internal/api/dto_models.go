package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/core"
)

// ErrorResponse is the stable error shape of the API:
// {"error": true, "message": "..."}.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// TokenResponse is the body of a successful POST /jwt.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a simple informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateResponse reports how many documents an update touched.
type UpdateResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResponse reports how many documents a delete removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// PaymentIntentResponse carries the gateway client secret the frontend
// uses to complete the charge.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// respondError maps service errors onto HTTP statuses with the stable
// error shape. Unrecognized errors become 500 with a generic message so
// store internals do not leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
	case errors.Is(err, core.ErrInvalidID), errors.Is(err, core.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: err.Error()})
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrClassNotFound),
		errors.Is(err, core.ErrSelectionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: true, Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: true, Message: "internal server error"})
	}
}

// respondBindError answers 400 for request binding/validation failures.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: "invalid request body: " + err.Error()})
}
