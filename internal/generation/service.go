package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/metrics"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// Result is a normalized provider response. Text kinds fill Text; contacts
// and client lists fill Records with a JSON array.
type Result struct {
	Kind    domain.Kind
	Text    string
	Records json.RawMessage
}

// DecodeRecords decodes Records into a typed slice.
func DecodeRecords[T any](r Result) ([]T, error) {
	out := []T{}
	if len(r.Records) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.Records, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, nil
}

// Options tune a Service. Zero values mean no timeout and no rate limit.
type Options struct {
	Model     string
	Timeout   time.Duration
	RateLimit float64 // calls per second
	RateBurst int
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
}

// Service is the single entry point generators use to reach a provider.
type Service struct {
	provider Provider
	model    string
	timeout  time.Duration
	limiter  *rate.Limiter
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewService(p Provider, opts Options) *Service {
	s := &Service{
		provider: p,
		model:    opts.Model,
		timeout:  opts.Timeout,
		log:      opts.Logger,
		metrics:  opts.Metrics,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return s
}

// Provider returns the provider name, for logs and responses.
func (s *Service) Provider() string {
	return s.provider.Name()
}

// Generate renders the kind's template with fields, calls the provider once
// and normalizes the answer. No retries are attempted.
func (s *Service) Generate(ctx context.Context, kind domain.Kind, fields map[string]string) (Result, error) {
	tmpl, err := TemplateFor(kind)
	if err != nil {
		return Result{}, err
	}
	user, err := tmpl.Render(fields)
	if err != nil {
		return Result{}, err
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("rate limit wait: %w", err)
		}
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log := logging.FromContext(ctx, s.log)
	fieldsLog := []zap.Field{zap.String("kind", string(kind)), zap.String("provider", s.provider.Name())}

	start := time.Now()
	text, err := s.provider.Complete(ctx, Request{
		Model:             s.model,
		SystemInstruction: tmpl.System,
		UserContent:       user,
		Format:            tmpl.Format,
		Temperature:       tmpl.Temperature,
	})
	latency := time.Since(start)
	fieldsLog = append(fieldsLog, zap.Duration("latency", latency))

	if err == nil {
		var res Result
		res, err = normalize(kind, tmpl, text)
		if err == nil {
			s.metrics.RecordGeneration(string(kind), s.provider.Name(), latency, nil)
			log.LogInfo("generation.generate", "generation completed", fieldsLog...)
			return res, nil
		}
	}

	s.metrics.RecordGeneration(string(kind), s.provider.Name(), latency, err)
	log.LogError("generation.generate", err, fieldsLog...)
	return Result{}, err
}

func normalize(kind domain.Kind, tmpl Template, text string) (Result, error) {
	if tmpl.Format == FormatJSON {
		records, err := normalizeArray(text, tmpl.ArrayField)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: kind, Records: records}, nil
	}
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyResponse
	}
	return Result{Kind: kind, Text: text}, nil
}
