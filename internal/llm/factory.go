package llm

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/port"
)

// ProviderFactory creates a ModelClient from the model configuration.
type ProviderFactory func(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (port.ModelClient, error)

var (
	mu        sync.RWMutex
	providers = map[string]ProviderFactory{}
)

// RegisterProvider registers a model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	mu.Lock()
	defer mu.Unlock()
	providers[name] = factory
}

// NewClient creates a ModelClient using the factory registered for cfg.Provider.
func NewClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (port.ModelClient, error) {
	mu.RLock()
	factory, ok := providers[cfg.Provider]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(ctx, cfg, logger)
}
