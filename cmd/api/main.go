package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-vedascholars-backend/config"
	_ "go-vedascholars-backend/docs" // Important for Swagger
	v1 "go-vedascholars-backend/internal/delivery/http/v1"
	"go-vedascholars-backend/internal/usecase"
	"go-vedascholars-backend/pkg/email"
	"go-vedascholars-backend/pkg/logger"
	"go-vedascholars-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Veda Scholars Backend API
// @version         1.0
// @description     Contact-intake backend for the Veda Scholars website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting Veda Scholars backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting store; falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will simulate delivery")
	}

	// 5. Setup UseCases
	validate := validator.New()
	inquiryUC := usecase.NewInquiryUsecase(emailService, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: inquiryUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
