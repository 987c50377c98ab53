// Package generators holds one generator per artifact kind, the fallbacks
// they return when the provider fails, and the draft workflow around them.
package generators

import "errors"

var (
	ErrMissingInput         = errors.New("required input missing")
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrNothingToSave        = errors.New("nothing to save")
	ErrDraftNotFound        = errors.New("draft not found")
)

// Outcome is the result of one generation. When the provider failed,
// Content holds the kind's fallback and Cause the provider error.
type Outcome[C any] struct {
	Content  C
	Fallback bool
	Cause    error
}

func Succeeded[C any](c C) Outcome[C] {
	return Outcome[C]{Content: c}
}

func FailedWithFallback[C any](c C, cause error) Outcome[C] {
	return Outcome[C]{Content: c, Fallback: true, Cause: cause}
}

// Warning is the user-facing note attached to fallback content.
func (o Outcome[C]) Warning() string {
	if !o.Fallback {
		return ""
	}
	if o.Cause == nil {
		return "a geração falhou; exibindo conteúdo de exemplo"
	}
	return "a geração falhou; exibindo conteúdo de exemplo: " + o.Cause.Error()
}
