package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prodrawing-backend-go/internal/api"
	"prodrawing-backend-go/internal/auth"
	"prodrawing-backend-go/internal/config"
	"prodrawing-backend-go/internal/core"
	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/middleware"
)

func main() {
	// Load configuration first so the logger mode can follow GIN_MODE.
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load application configuration: %v", err)
	}

	releaseMode := strings.ToLower(appConfig.GinMode) == "release"

	var zapLogger *zap.Logger
	if releaseMode {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("configuration loaded", zap.String("database", appConfig.MongoDatabase))

	// Connect to MongoDB with a bounded init timeout; the client is
	// owned here and disconnected on shutdown.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	mongoClient, database, err := db.Connect(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	zapLogger.Info("connected to MongoDB")

	if err := db.EnsureIndexes(initCtx, database); err != nil {
		zapLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	// Repositories.
	userRepo := db.NewMongoUserRepository(database)
	classRepo := db.NewMongoClassRepository(database)
	selectionRepo := db.NewMongoSelectionRepository(database)
	paymentRepo := db.NewMongoPaymentRepository(database)

	// Services.
	tokenIssuer := auth.NewTokenIssuer(appConfig.AccessTokenSecret)
	userService := core.NewUserService(userRepo)
	classService := core.NewClassService(classRepo)
	selectionService := core.NewSelectionService(selectionRepo)
	enrollmentService := core.NewEnrollmentService(paymentRepo, selectionRepo, classRepo, zapLogger)
	billingService := core.NewBillingService(appConfig.PaymentSecretKey, paymentRepo, zapLogger)
	zapLogger.Info("services initialized")

	if releaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware, order matters: logger first, recovery next so
	// panics are logged, CORS before the routes.
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.Recovery(zapLogger))
	router.Use(middleware.CORS(appConfig))

	api.SetupRoutes(
		router,
		zapLogger,
		tokenIssuer,
		userService,
		classService,
		selectionService,
		enrollmentService,
		billingService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the Mongo
	// client.
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		zapLogger.Error("failed to disconnect MongoDB client", zap.Error(err))
	}

	zapLogger.Info("server exiting gracefully")
}
