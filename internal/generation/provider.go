// Package generation turns generator form fields into a provider request and
// normalizes what comes back.
package generation

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmptyResponse     = errors.New("empty response from provider")
	ErrMalformedResponse = errors.New("malformed response from provider")
	ErrNotConfigured     = errors.New("generation provider not configured")
)

// Format is the response shape asked of the provider.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Request is a single-turn completion request.
type Request struct {
	Model             string
	SystemInstruction string
	UserContent       string
	Format            Format
	Temperature       float32
}

// Provider sends a Request to a text generation API and returns the raw text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Unconfigured stands in for a provider whose credentials are missing.
// Every call fails, so generators serve their fallback content.
func Unconfigured(name string, cause error) Provider {
	return unconfigured{name: name, cause: cause}
}

type unconfigured struct {
	name  string
	cause error
}

func (u unconfigured) Name() string { return u.name }

func (u unconfigured) Complete(context.Context, Request) (string, error) {
	if u.cause == nil {
		return "", ErrNotConfigured
	}
	return "", fmt.Errorf("%w: %v", ErrNotConfigured, u.cause)
}
