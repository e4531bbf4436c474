package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"agendahub/config"
	_ "agendahub/docs"
	"agendahub/internal/adapters/auth"
	"agendahub/internal/adapters/email"
	httpdelivery "agendahub/internal/delivery/http"
	"agendahub/internal/delivery/http/controllers"
	"agendahub/internal/delivery/http/helpers"
	"agendahub/internal/delivery/http/middleware"
	"agendahub/internal/repository/postgres"
	"agendahub/internal/services"
)

const contextTimeout = 5 * time.Second

// @title Agendahub API
// @version 1.0
// @description Scheduled event management: agenda events, categories, and date-window queries.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger().Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), contextTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	emailService := services.NewEmailService(mailer)
	eventService := services.NewEventService(
		eventRepo,
		categoryRepo,
		emailService,
		logger,
		time.Now,
		cfg.AutoCreateCategory,
		cfg.NotifyAddress,
		contextTimeout,
	)
	categoryService := services.NewCategoryService(categoryRepo, eventRepo, contextTimeout)

	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, auth.NewBcryptVerifier(), tokens, cfg.TokenExpiry)

	classifier := helpers.NewClassifier(cfg.AutoCreateCategory)
	eventController := controllers.NewEventController(logger, eventService, classifier)
	categoryController := controllers.NewCategoryController(logger, categoryService, classifier)
	authController := controllers.NewAuthController(logger, authService, classifier)

	mux := httpdelivery.NewRouter(eventController, categoryController, authController, tokens, db)

	var handler http.Handler = middleware.Logging(logger, mux)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Port, "environment", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
