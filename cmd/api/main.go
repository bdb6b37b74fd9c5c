package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aleb-backend/config"
	_ "aleb-backend/docs" // Important for Swagger
	v1 "aleb-backend/internal/delivery/http/v1"
	"aleb-backend/internal/usecase"
	"aleb-backend/pkg/logger"
	"aleb-backend/pkg/mail"
	"aleb-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
)

// @title           ALEB Website Backend
// @version         1.0
// @description     Relays contact messages and career applications as email.
// @host            localhost:5000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ALEB backend", "port", cfg.Port)

	// 3. Setup Upload Sink
	sink, err := upload.NewSink(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 4. Setup Mail Senders (contact and careers use separate accounts)
	contactSender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.ContactSender)
	careersSender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.CareersSender)
	if !contactSender.IsConfigured() {
		logger.Log.Warn("Contact sender not fully configured - contact form will be unavailable")
	}
	if !careersSender.IsConfigured() {
		logger.Log.Warn("Careers sender not fully configured - career form will be unavailable")
	}

	// 5. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(contactSender, cfg, validate)
	applicationUC := usecase.NewApplicationUsecase(careersSender, cfg, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		ApplicationUC: applicationUC,
		UploadSink:    sink,
		Config:        cfg,
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
