package generation

import (
	"context"
	"sync"
)

// fakeProvider returns a canned answer and remembers what it was asked.
type fakeProvider struct {
	mu    sync.Mutex
	text  string
	err   error
	calls []Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.text, f.err
}

func (f *fakeProvider) last() Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}
