package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/core"
	"prodrawing-backend-go/internal/middleware"
	"prodrawing-backend-go/internal/models"
)

// ClassHandler handles class listing, creation and moderation endpoints.
type ClassHandler struct {
	classService core.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(cs core.ClassService) *ClassHandler {
	return &ClassHandler{classService: cs}
}

// ListClasses handles GET /classes.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListApprovedClasses handles GET /approvedclasses.
func (h *ClassHandler) ListApprovedClasses(c *gin.Context) {
	classes, err := h.classService.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass handles GET /classes/:id.
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// MyClasses handles GET /myclasses?email= (instructor only). The query
// email must match the token identity; a mismatch halts the request
// before any store access.
func (h *ClassHandler) MyClasses(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []*models.Class{})
		return
	}
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
		return
	}

	classes, err := h.classService.ListByInstructor(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass handles POST /classes (instructor only). The instructor
// email on the new class must be the caller's own identity.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.InstructorEmail != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
		return
	}

	class, err := h.classService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// UpdateClass handles PATCH /classes/:id (owning instructor only).
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req models.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	callerEmail := c.GetString(middleware.ContextEmailKey)
	modified, err := h.classService.UpdateInfo(c.Request.Context(), callerEmail, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateResponse{ModifiedCount: modified})
}

// ApproveClass handles PATCH /classes/approved/:id (admin only).
func (h *ClassHandler) ApproveClass(c *gin.Context) {
	modified, err := h.classService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateResponse{ModifiedCount: modified})
}

// DenyClass handles PATCH /classes/denied/:id (admin only).
func (h *ClassHandler) DenyClass(c *gin.Context) {
	modified, err := h.classService.Deny(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateResponse{ModifiedCount: modified})
}

// SetFeedback handles PATCH /classes/feedback/:id (admin only).
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	modified, err := h.classService.SetFeedback(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateResponse{ModifiedCount: modified})
}
