package generators

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generation"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/metrics"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// TextService is the generation adapter as seen by generators.
type TextService interface {
	Generate(ctx context.Context, kind domain.Kind, fields map[string]string) (generation.Result, error)
}

// Generator produces content of type C from an input of type I.
type Generator[I domain.Input, C any] interface {
	Kind() domain.Kind
	Ready(in I) bool
	Generate(ctx context.Context, in I) Outcome[C]
}

// base carries what every generator needs to call the adapter and report
// fallbacks.
type base struct {
	svc     TextService
	log     *zap.Logger
	metrics *metrics.Metrics
}

func (b base) fallback(ctx context.Context, kind domain.Kind, cause error) {
	b.metrics.RecordFallback(string(kind))
	logging.FromContext(ctx, b.log).LogWarn("generators.fallback", "returning fallback content",
		zap.String("kind", string(kind)), zap.Error(cause))
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// generateText runs a text kind and substitutes fallback on any failure.
func generateText(ctx context.Context, b base, kind domain.Kind, fields map[string]string, fallback func(error) string) Outcome[string] {
	res, err := b.svc.Generate(ctx, kind, fields)
	if err != nil {
		b.fallback(ctx, kind, err)
		return FailedWithFallback(fallback(err), err)
	}
	return Succeeded(res.Text)
}

// generateRecords runs a structured kind and substitutes fallback on any failure.
func generateRecords[T any](ctx context.Context, b base, kind domain.Kind, fields map[string]string, fallback func() []T) Outcome[[]T] {
	res, err := b.svc.Generate(ctx, kind, fields)
	if err == nil {
		var records []T
		records, err = generation.DecodeRecords[T](res)
		if err == nil {
			return Succeeded(records)
		}
	}
	b.fallback(ctx, kind, err)
	return FailedWithFallback(fallback(), err)
}
