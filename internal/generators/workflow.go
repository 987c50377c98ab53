package generators

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// State is where a workflow is in its generate cycle.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
)

// Workflow drives one generator: it holds the form input, guards against
// overlapping runs and keeps the latest outcome. A workflow opened from a
// saved project carries the project's id so the next save updates it.
type Workflow[I domain.Input, C any] struct {
	gen Generator[I, C]

	mu             sync.Mutex
	input          I
	state          State
	result         *Outcome[C]
	name           string
	projectID      string
	structuredData json.RawMessage
}

func NewWorkflow[I domain.Input, C any](gen Generator[I, C], input I) *Workflow[I, C] {
	return &Workflow[I, C]{gen: gen, input: input, state: StateIdle}
}

func (w *Workflow[I, C]) Input() I {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// SetInput replaces the form input. Editing is allowed while a run is in
// flight; the run keeps the input it started with.
func (w *Workflow[I, C]) SetInput(in I) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input = in
}

func (w *Workflow[I, C]) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow[I, C]) Ready() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen.Ready(w.input)
}

// Result returns the latest outcome, if any run has completed.
func (w *Workflow[I, C]) Result() (Outcome[C], bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		var zero Outcome[C]
		return zero, false
	}
	return *w.result, true
}

// Run generates from the current input. It refuses to start while another
// run is in flight or when the required input is blank; in both cases the
// workflow is left untouched.
func (w *Workflow[I, C]) Run(ctx context.Context) (Outcome[C], error) {
	w.mu.Lock()
	if w.state == StateGenerating {
		w.mu.Unlock()
		return Outcome[C]{}, ErrGenerationInProgress
	}
	if !w.gen.Ready(w.input) {
		w.mu.Unlock()
		return Outcome[C]{}, ErrMissingInput
	}
	w.state = StateGenerating
	in := w.input
	w.mu.Unlock()

	out := w.gen.Generate(ctx, in)

	w.mu.Lock()
	w.result = &out
	w.state = StateIdle
	w.mu.Unlock()
	return out, nil
}

// Resume loads a saved project into the workflow.
func (w *Workflow[I, C]) Resume(p domain.Project, in I, content C) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input = in
	w.result = &Outcome[C]{Content: content}
	w.name = p.Name
	w.projectID = p.ID
	w.structuredData = p.StructuredData
}

func (w *Workflow[I, C]) Name() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.name
}

func (w *Workflow[I, C]) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
}

func (w *Workflow[I, C]) ProjectID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.projectID
}

// Bind records the id and name a save assigned.
func (w *Workflow[I, C]) Bind(projectID, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.projectID = projectID
	w.name = name
}

func (w *Workflow[I, C]) StructuredData() json.RawMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.structuredData
}
