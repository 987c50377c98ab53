package bootstrap

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/config"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generation"
)

// NewProvider builds the configured generation provider. A provider that
// cannot be built (usually a missing API key) is replaced by one that always
// fails, so the app still runs and generators return their fallbacks.
func NewProvider(ctx context.Context, cfg config.GenerationConfig, log *zap.Logger) generation.Provider {
	var (
		p   generation.Provider
		err error
	)
	switch cfg.Provider {
	case "anthropic":
		var opts []option.RequestOption
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
		p, err = generation.NewAnthropic(cfg.AnthropicAPIKey, cfg.Model, opts...)
	default:
		p, err = generation.NewGemini(ctx, generation.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	}
	if err != nil {
		log.Warn("generation provider unavailable, serving fallbacks",
			zap.String("provider", cfg.Provider), zap.Error(err))
		return generation.Unconfigured(cfg.Provider, err)
	}
	return p
}
