package http

import (
	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/service"
)

// DraftOpener opens an editing draft for a saved project.
type DraftOpener interface {
	OpenProject(p domain.Project) (generators.Draft, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc    *service.ProjectService
	drafts DraftOpener
	log    *zap.Logger
}

func New(svc *service.ProjectService, drafts DraftOpener, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, drafts: drafts, log: log}
}

type updateReq struct {
	Name    *string           `json:"name"`
	Fields  map[string]string `json:"fields"`
	Content *contentPatch     `json:"content"`
}

type contentPatch struct {
	Text    *string         `json:"text"`
	Clients []domain.Client `json:"clients"`
}
