package generators

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generation"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// stubService answers every kind with a fixed result or error.
type stubService struct {
	mu     sync.Mutex
	text   string
	json   string
	err    error
	fields []map[string]string
	block  chan struct{} // when set, Generate waits for it to close
}

func (s *stubService) Generate(ctx context.Context, kind domain.Kind, fields map[string]string) (generation.Result, error) {
	s.mu.Lock()
	s.fields = append(s.fields, fields)
	block := s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return generation.Result{}, ctx.Err()
		}
	}
	if s.err != nil {
		return generation.Result{}, s.err
	}
	if kind.Structured() {
		return generation.Result{Kind: kind, Records: json.RawMessage(s.json)}, nil
	}
	return generation.Result{Kind: kind, Text: s.text}, nil
}

func (s *stubService) lastFields() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[len(s.fields)-1]
}

var errProvider = errors.New("provider unavailable")
