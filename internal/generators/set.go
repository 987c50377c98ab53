package generators

import (
	"context"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/metrics"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// Set holds one generator per kind and builds drafts for them.
type Set struct {
	Site     SiteGenerator
	Contacts ContactsGenerator
	Clients  ClientListGenerator
	Contract ContractGenerator
	Approach ApproachGenerator
}

// NewSet wires every generator to svc.
func NewSet(svc TextService, log *zap.Logger, m *metrics.Metrics) *Set {
	if log == nil {
		log = zap.NewNop()
	}
	b := base{svc: svc, log: log, metrics: m}
	return &Set{
		Site:     SiteGenerator{b},
		Contacts: ContactsGenerator{b},
		Clients:  ClientListGenerator{b},
		Contract: ContractGenerator{b},
		Approach: ApproachGenerator{b},
	}
}

// NewDraft creates an idle draft of kind with the given form fields.
func (s *Set) NewDraft(id string, kind domain.Kind, fields map[string]string) (Draft, error) {
	in, err := domain.InputFromFields(kind, fields)
	if err != nil {
		return nil, err
	}
	switch v := in.(type) {
	case domain.SiteInput:
		return newDraft(id, Generator[domain.SiteInput, string](s.Site), v, textCodec), nil
	case domain.ContactsInput:
		return newDraft(id, Generator[domain.ContactsInput, []domain.Contact](s.Contacts), v, contactsCodec), nil
	case domain.ClientSearchInput:
		return newDraft(id, Generator[domain.ClientSearchInput, []domain.Client](s.Clients), v, clientsCodec), nil
	case domain.ContractInput:
		return newDraft(id, Generator[domain.ContractInput, string](s.Contract), v, textCodec), nil
	case domain.ApproachInput:
		return newDraft(id, Generator[domain.ApproachInput, string](s.Approach), v, textCodec), nil
	}
	return nil, domain.ErrInvalidKind
}

// ResumeDraft opens a draft prefilled from a saved project.
func (s *Set) ResumeDraft(id string, p domain.Project) (Draft, error) {
	d, err := s.NewDraft(id, p.Kind(), nil)
	if err != nil {
		return nil, err
	}
	if r, ok := d.(interface{ resume(domain.Project) error }); ok {
		if err := r.resume(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Generate runs kind once without keeping a draft.
func (s *Set) Generate(ctx context.Context, kind domain.Kind, fields map[string]string) (*ResultView, error) {
	d, err := s.NewDraft("", kind, fields)
	if err != nil {
		return nil, err
	}
	v, err := d.Generate(ctx)
	if err != nil {
		return nil, err
	}
	return v.Result, nil
}
