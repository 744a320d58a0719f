package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/core"
	"prodrawing-backend-go/internal/middleware"
	"prodrawing-backend-go/internal/models"
)

// PaymentHandler handles payment history, gateway authorization and the
// enrollment completion endpoint.
type PaymentHandler struct {
	billingService    core.BillingService
	enrollmentService core.EnrollmentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(bs core.BillingService, es core.EnrollmentService) *PaymentHandler {
	return &PaymentHandler{billingService: bs, enrollmentService: es}
}

// PaymentData handles GET /paymentData?email=: a student's payment
// history, newest first. The query email must match the token identity.
func (h *PaymentHandler) PaymentData(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []*models.Payment{})
		return
	}
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: true, Message: "forbidden access"})
		return
	}

	payments, err := h.billingService.ListPayments(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePaymentIntent handles POST /create-payment-intent: authorizes a
// card charge with the gateway and returns the client secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	clientSecret, err := h.billingService.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

// CompleteEnrollment handles POST /payments: the three-step completion
// workflow. Authorization failures answer 403 before any effect; a
// partial failure after the payment committed still answers 200 with
// the failing step visible in the composite body.
func (h *PaymentHandler) CompleteEnrollment(c *gin.Context) {
	var req models.CompleteEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	callerEmail := c.GetString(middleware.ContextEmailKey)
	result, err := h.enrollmentService.Complete(c.Request.Context(), callerEmail, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
