package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ContactListLister reads saved contact lists.
type ContactListLister interface {
	List(ctx context.Context) ([]domain.SavedContactList, error)
}

// Handler bundles the dependencies for generation and draft endpoints.
type Handler struct {
	set      *generators.Set
	drafts   *generators.Registry
	saver    *generators.Saver
	contacts ContactListLister
	log      *zap.Logger
}

func New(set *generators.Set, drafts *generators.Registry, saver *generators.Saver, contacts ContactListLister, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{set: set, drafts: drafts, saver: saver, contacts: contacts, log: log}
}

type generateReq struct {
	Fields map[string]string `json:"fields"`
}

type openDraftReq struct {
	Kind   string            `json:"kind"`
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

type updateDraftReq struct {
	Name   *string           `json:"name"`
	Fields map[string]string `json:"fields"`
}

type saveDraftReq struct {
	Name *string `json:"name"`
}

type profileLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
