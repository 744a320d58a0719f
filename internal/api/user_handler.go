package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/core"
	"prodrawing-backend-go/internal/middleware"
	"prodrawing-backend-go/internal/models"
)

// UserHandler handles account and role endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// CreateUser handles POST /users: get-or-create on first sign-in.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, MessageResponse{Message: "user already exist"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListInstructors handles GET /instructors: public listing sorted by
// enrolled students.
func (h *UserHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.userService.ListInstructors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// CheckAdmin handles GET /users/admin/:email. A caller asking about a
// different identity gets {admin: false} without a store lookup.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if c.GetString(middleware.ContextEmailKey) != email {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}

	isAdmin, err := h.userService.HasRole(c.Request.Context(), email, models.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// CheckInstructor handles GET /users/instructor/:email.
func (h *UserHandler) CheckInstructor(c *gin.Context) {
	email := c.Param("email")
	if c.GetString(middleware.ContextEmailKey) != email {
		c.JSON(http.StatusOK, gin.H{"instructor": false})
		return
	}

	isInstructor, err := h.userService.HasRole(c.Request.Context(), email, models.RoleInstructor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instructor": isInstructor})
}

// GrantAdmin handles PATCH /users/admin/:id (admin only).
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	h.grantRole(c, models.RoleAdmin)
}

// GrantInstructor handles PATCH /users/instructor/:id (admin only).
func (h *UserHandler) GrantInstructor(c *gin.Context) {
	h.grantRole(c, models.RoleInstructor)
}

func (h *UserHandler) grantRole(c *gin.Context, role string) {
	modified, err := h.userService.GrantRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateResponse{ModifiedCount: modified})
}
