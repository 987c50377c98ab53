package service

import (
	"context"
	"strings"
	"time"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/repository"
)

// ProjectService applies the save rules on top of the project repository.
type ProjectService struct {
	repo *repository.ProjectRepository
	now  func() time.Time
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo, now: time.Now}
}

// List returns saved projects matching query (all when blank).
func (s *ProjectService) List(ctx context.Context, query string) ([]domain.Project, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(items, query), nil
}

// Get returns one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Save validates p, stamps the save date and upserts it. Client lists saved
// without a name get "<niche> - <date>".
func (s *ProjectService) Save(ctx context.Context, p domain.Project) (domain.Project, error) {
	if err := s.prepare(&p); err != nil {
		return domain.Project{}, err
	}
	return s.repo.Upsert(ctx, p)
}

// Update edits an existing project in place. It never creates one: a
// missing id, including one deleted concurrently, returns domain.ErrNotFound.
func (s *ProjectService) Update(ctx context.Context, id string, edit func(*domain.Project)) (domain.Project, error) {
	return s.repo.Update(ctx, id, func(p *domain.Project) error {
		edit(p)
		return s.prepare(p)
	})
}

func (s *ProjectService) prepare(p *domain.Project) error {
	if !p.Kind().Persistable() {
		return domain.ErrNotPersistable
	}

	now := s.now()
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		in, ok := p.Input.(domain.ClientSearchInput)
		if !ok {
			return domain.ErrNameRequired
		}
		p.Name = domain.DefaultClientListName(in.Niche, now)
	}
	p.Date = domain.FormatDate(now)
	if p.Kind() == domain.KindClientList && p.Content.Clients == nil {
		p.Content.Clients = []domain.Client{}
	}
	return nil
}

// Delete removes a project; false when it did not exist.
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
