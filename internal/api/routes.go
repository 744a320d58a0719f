package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"prodrawing-backend-go/internal/auth"
	"prodrawing-backend-go/internal/core"
	"prodrawing-backend-go/internal/middleware"
	"prodrawing-backend-go/internal/models"
)

// RegisterValidators installs custom binding validations on Gin's
// validator engine. "objectid" checks that a field is a valid hex
// document id, so malformed ids fail at binding instead of deep in a
// repository call.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			_, err := primitive.ObjectIDFromHex(fl.Field().String())
			return err == nil
		})
	}
}

// SetupRoutes configures all application routes. Global middleware
// (request logger, recovery, CORS) is applied to the router before this
// is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	tokenIssuer *auth.TokenIssuer,
	userService core.UserService,
	classService core.ClassService,
	selectionService core.SelectionService,
	enrollmentService core.EnrollmentService,
	billingService core.BillingService,
) {
	RegisterValidators()

	authMW := middleware.NewAuthMiddleware(tokenIssuer)
	roleMW := middleware.NewRoleMiddleware(userService)
	requireJWT := authMW.VerifyToken()
	requireAdmin := roleMW.Require(models.RoleAdmin)
	requireInstructor := roleMW.Require(models.RoleInstructor)

	authHandler := NewAuthHandler(tokenIssuer)
	userHandler := NewUserHandler(userService)
	classHandler := NewClassHandler(classService)
	selectionHandler := NewSelectionHandler(selectionService)
	paymentHandler := NewPaymentHandler(billingService, enrollmentService)

	// Liveness.
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Pro Drawing is Running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	// Tokens.
	router.POST("/jwt", authHandler.IssueToken)

	// Users and roles.
	router.POST("/users", userHandler.CreateUser)
	router.GET("/users", requireJWT, userHandler.ListUsers)
	router.GET("/instructors", userHandler.ListInstructors)
	router.GET("/users/admin/:email", requireJWT, userHandler.CheckAdmin)
	router.GET("/users/instructor/:email", requireJWT, userHandler.CheckInstructor)
	router.PATCH("/users/admin/:id", requireJWT, requireAdmin, userHandler.GrantAdmin)
	router.PATCH("/users/instructor/:id", requireJWT, requireAdmin, userHandler.GrantInstructor)

	// Classes: public listings, instructor management, admin moderation.
	router.GET("/classes", classHandler.ListClasses)
	router.GET("/approvedclasses", classHandler.ListApprovedClasses)
	router.GET("/classes/:id", classHandler.GetClass)
	router.GET("/myclasses", requireJWT, requireInstructor, classHandler.MyClasses)
	router.POST("/classes", requireJWT, requireInstructor, classHandler.CreateClass)
	router.PATCH("/classes/:id", requireJWT, requireInstructor, classHandler.UpdateClass)
	router.PATCH("/classes/approved/:id", requireJWT, requireAdmin, classHandler.ApproveClass)
	router.PATCH("/classes/denied/:id", requireJWT, requireAdmin, classHandler.DenyClass)
	router.PATCH("/classes/feedback/:id", requireJWT, requireAdmin, classHandler.SetFeedback)

	// Selected classes (pending enrollment intents).
	router.GET("/selectedclasses", requireJWT, selectionHandler.ListSelections)
	router.GET("/selectedclasses/:id", requireJWT, selectionHandler.GetSelection)
	router.POST("/selectedclasses", requireJWT, selectionHandler.CreateSelection)
	router.DELETE("/selectedclasses/:id", requireJWT, selectionHandler.DeleteSelection)

	// Payments.
	router.GET("/paymentData", requireJWT, paymentHandler.PaymentData)
	router.POST("/create-payment-intent", requireJWT, paymentHandler.CreatePaymentIntent)
	router.POST("/payments", requireJWT, paymentHandler.CompleteEnrollment)

	logger.Info("API routes configured")
}
