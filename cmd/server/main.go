package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/handler"
	"techtospeak/internal/llm"
	"techtospeak/internal/llm/gemini"
	"techtospeak/internal/logger"
	"techtospeak/internal/router"
	"techtospeak/internal/service"
)

// @title Tech To Speak API
// @version 0.1.0
// @description Backend del Traductor de Jerga de Oficio
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zapLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zapLog.Sync() }()

	// Initialize model client
	llm.RegisterProvider("gemini", gemini.Factory)
	client, err := llm.NewClient(context.Background(), &cfg.Gemini, zapLog)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}

	// Initialize services
	jargonSvc := service.NewJargonService(client, &cfg.Upload, zapLog)

	// Initialize handlers
	handlers := router.Handlers{
		Health: handler.NewHealthHandler(),
		Audio:  handler.NewAudioHandler(jargonSvc, &cfg.Upload, zapLog),
		Jargon: handler.NewJargonHandler(jargonSvc, zapLog),
		File:   handler.NewFileHandler(jargonSvc, &cfg.Upload, zapLog),
		Image:  handler.NewImageHandler(jargonSvc, &cfg.Upload, zapLog),
	}

	// Setup router
	r := router.Setup(handlers, cfg.CORS.AllowedOrigins, zapLog)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLog.Info("Server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("model", cfg.Gemini.Model),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-stop:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	// In-flight requests may still be waiting on the model; give them the write timeout.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	zapLog.Info("Server stopped")
	return nil
}
