package main

import (
	"context"
	"fmt"
	"os"

	"techtospeak/internal/cli"
	"techtospeak/internal/config"
	"techtospeak/internal/llm"
	"techtospeak/internal/llm/gemini"
	"techtospeak/internal/logger"
	"techtospeak/internal/service"
)

func main() {
	rootCmd := cli.CreateRootCommand(newService)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService(ctx context.Context) (service.JargonService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Keep stdout clean for the JSON result; the logger writes to stderr.
	zapLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	llm.RegisterProvider("gemini", gemini.Factory)
	client, err := llm.NewClient(ctx, &cfg.Gemini, zapLog)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model client: %w", err)
	}

	return service.NewJargonService(client, &cfg.Upload, zapLog), nil
}
