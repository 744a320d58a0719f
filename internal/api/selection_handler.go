package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/core"
	"prodrawing-backend-go/internal/middleware"
	"prodrawing-backend-go/internal/models"
)

// SelectionHandler handles the pending-enrollment (selected class)
// endpoints.
type SelectionHandler struct {
	selectionService core.SelectionService
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(ss core.SelectionService) *SelectionHandler {
	return &SelectionHandler{selectionService: ss}
}

// ListSelections handles GET /selectedclasses?email=. The query email
// must match the token identity; a mismatch halts the request before
// any store access.
func (h *SelectionHandler) ListSelections(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []*models.SelectedClass{})
		return
	}
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
		return
	}

	selections, err := h.selectionService.ListByStudent(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, selections)
}

// GetSelection handles GET /selectedclasses/:id. Only the owning
// student can read their selection.
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	selection, err := h.selectionService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if selection.Email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
		return
	}
	c.JSON(http.StatusOK, selection)
}

// CreateSelection handles POST /selectedclasses. The selection email
// must be the caller's own identity.
func (h *SelectionHandler) CreateSelection(c *gin.Context) {
	var req models.CreateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
		return
	}

	selection, err := h.selectionService.Select(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, selection)
}

// DeleteSelection handles DELETE /selectedclasses/:id: explicit
// cancellation by the owning student.
func (h *SelectionHandler) DeleteSelection(c *gin.Context) {
	callerEmail := c.GetString(middleware.ContextEmailKey)
	deleted, err := h.selectionService.Cancel(c.Request.Context(), callerEmail, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{DeletedCount: deleted})
}
