package generators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// Draft is a workflow of any kind, addressed by id.
type Draft interface {
	ID() string
	Kind() domain.Kind
	View() View
	Input() domain.Input
	// Update merges fields into the input and renames the draft when name is non-nil.
	Update(name *string, fields map[string]string)
	Generate(ctx context.Context) (View, error)
	Content() (Content, bool)
	Name() string
	ProjectID() string
	StructuredData() json.RawMessage
	Bind(projectID, name string)
}

// View is the serializable state of a draft.
type View struct {
	ID        string            `json:"id"`
	Kind      domain.Kind       `json:"kind"`
	Name      string            `json:"name"`
	ProjectID string            `json:"projectId,omitempty"`
	State     State             `json:"state"`
	Ready     bool              `json:"ready"`
	Fields    map[string]string `json:"fields"`
	Result    *ResultView       `json:"result,omitempty"`
}

// ResultView is the latest outcome of a draft.
type ResultView struct {
	Content
	Fallback bool   `json:"fallback"`
	Warning  string `json:"warning,omitempty"`
}

func resultView[C any](o Outcome[C], c codec[C]) *ResultView {
	return &ResultView{Content: c.wrap(o.Content), Fallback: o.Fallback, Warning: o.Warning()}
}

type draft[I domain.Input, C any] struct {
	id    string
	kind  domain.Kind
	codec codec[C]
	*Workflow[I, C]
}

func newDraft[I domain.Input, C any](id string, gen Generator[I, C], in I, c codec[C]) *draft[I, C] {
	return &draft[I, C]{id: id, kind: gen.Kind(), codec: c, Workflow: NewWorkflow(gen, in)}
}

func (d *draft[I, C]) ID() string        { return d.id }
func (d *draft[I, C]) Kind() domain.Kind { return d.kind }

func (d *draft[I, C]) Input() domain.Input { return d.Workflow.Input() }

func (d *draft[I, C]) View() View {
	in := d.Workflow.Input()
	v := View{
		ID:        d.id,
		Kind:      d.kind,
		Name:      d.Name(),
		ProjectID: d.ProjectID(),
		State:     d.State(),
		Ready:     d.Ready(),
		Fields:    in.Fields(),
	}
	if out, ok := d.Result(); ok {
		v.Result = resultView(out, d.codec)
	}
	return v
}

func (d *draft[I, C]) Update(name *string, fields map[string]string) {
	if name != nil {
		d.SetName(*name)
	}
	if len(fields) == 0 {
		return
	}
	if merged, ok := domain.MergeFields(d.Workflow.Input(), fields).(I); ok {
		d.SetInput(merged)
	}
}

func (d *draft[I, C]) Generate(ctx context.Context) (View, error) {
	if _, err := d.Run(ctx); err != nil {
		return View{}, err
	}
	return d.View(), nil
}

func (d *draft[I, C]) Content() (Content, bool) {
	out, ok := d.Result()
	if !ok {
		return Content{}, false
	}
	return d.codec.wrap(out.Content), true
}

// resume fills the draft from a saved project of the same kind.
func (d *draft[I, C]) resume(p domain.Project) error {
	in, ok := p.Input.(I)
	if !ok {
		return fmt.Errorf("%w: project %s is %s, draft is %s", domain.ErrInvalidKind, p.ID, p.Kind(), d.kind)
	}
	d.Resume(p, withLegacyFallbacks(in), d.codec.unwrap(p.Content))
	return nil
}

// withLegacyFallbacks fills current form fields from legacy ones so a
// resumed form shows what older records stored under another name.
func withLegacyFallbacks[I domain.Input](in I) I {
	if site, ok := any(in).(domain.SiteInput); ok && strings.TrimSpace(site.Description) == "" {
		site.Description = site.Subject()
		return any(site).(I)
	}
	return in
}
