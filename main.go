// File: cerberus/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cerberus/config"
	"cerberus/database"
	contactRepo "cerberus/database/repository/contact"
	"cerberus/handlers"
	"cerberus/middleware"
	"cerberus/routes"
	"cerberus/services/catalog"
	"cerberus/services/contact"
	"cerberus/services/notification"
	"cerberus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := database.InitDB(); err != nil {
		logger.Sugar().Fatalf("main: failed to open database: %v", err)
	}
	submissions, err := contactRepo.NewRepository(rootCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to prepare submission store: %v", err)
	}

	cat, err := catalog.Load(config.AppConfig.CatalogFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load catalog: %v", err)
	}

	var mailer notification.Mailer
	if config.AppConfig.EmailHost == "" {
		logger.Warn("main: EMAIL_HOST not set, notifications will only be logged")
		mailer = &notification.LogMailer{Logger: logger}
	} else {
		mailer = notification.NewSMTPMailer(notification.SMTPConfig{
			Host:     config.AppConfig.EmailHost,
			Port:     config.AppConfig.EmailPort,
			Username: config.AppConfig.EmailUser,
			Password: config.AppConfig.EmailPass,
			FromName: config.AppConfig.EmailFromName,
			From:     config.AppConfig.EmailUser,
		})
	}

	checks := map[string]utils.HealthCheck{"database": database.Ping}

	var limiter middleware.Limiter
	rateClient, err := utils.InitRateCache()
	switch {
	case err != nil:
		logger.Warn("main: redis unavailable, using in-process rate limiting", zap.Error(err))
		limiter = middleware.NewMemoryLimiter(config.AppConfig.MaxRequestsPerMin)
	case rateClient != nil:
		limiter = middleware.NewRedisLimiter(rateClient, config.AppConfig.MaxRequestsPerMin)
		checks["redis"] = func(ctx context.Context) error { return rateClient.Ping(ctx).Err() }
	default:
		limiter = middleware.NewMemoryLimiter(config.AppConfig.MaxRequestsPerMin)
	}
	utils.StartHealthMonitor(rootCtx, 60*time.Second, checks)

	// services.
	contactService := contact.NewService(submissions, mailer, logger, contact.Options{
		NotifyTo:     config.AppConfig.EmailTo,
		StrictNotify: config.AppConfig.StrictNotify,
	})

	contactHandler := handlers.NewContactHandler(contactService)
	estimateHandler := handlers.NewEstimateHandler(cat)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))

	handlerBundle := &handlers.HandlerBundle{
		SubmitContact:  contactHandler.SubmitContactHandler,
		ContactLimiter: middleware.RateLimitMiddleware(limiter, logger),

		GetCatalog:      estimateHandler.GetCatalogHandler,
		ComputeEstimate: estimateHandler.ComputeEstimateHandler,
		SelectPostOnly:  estimateHandler.SelectPostOnlyHandler,
		EstimateSummary: estimateHandler.SummaryHandler,
	}
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigin)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: closing database", zap.Error(err))
	}
	if rateClient != nil {
		_ = rateClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
