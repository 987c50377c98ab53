package repository

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/metrics"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ProjectsKey is the storage key holding every saved project.
const ProjectsKey = "prompt_projects"

// ProjectRepository keeps all projects as one JSON array, newest first.
// Writes rewrite the whole array; mu serializes read-modify-write cycles
// inside this process. Across processes the last write wins.
type ProjectRepository struct {
	store   kv.Storage
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	mu sync.Mutex
}

// Option configures a ProjectRepository.
type Option func(*ProjectRepository)

// WithClock overrides the time source used for new ids.
func WithClock(now func() time.Time) Option {
	return func(r *ProjectRepository) { r.now = now }
}

// WithMetrics records store operations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *ProjectRepository) { r.metrics = m }
}

// NewProjectRepository creates a project repository over store.
func NewProjectRepository(store kv.Storage, log *zap.Logger, opts ...Option) *ProjectRepository {
	if log == nil {
		log = zap.NewNop()
	}
	r := &ProjectRepository{store: store, log: log, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns every project in stored order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	c, err := loadCollection[domain.Project](ctx, r.store, r.log, ProjectsKey)
	r.metrics.RecordStoreOp("list", err)
	if err != nil {
		return nil, err
	}
	return c.items(), nil
}

// Get returns the project with id or domain.ErrNotFound.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	c, err := loadCollection[domain.Project](ctx, r.store, r.log, ProjectsKey)
	r.metrics.RecordStoreOp("get", err)
	if err != nil {
		return nil, err
	}
	i := c.index(hasID(id))
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := c.records[i].item
	return &p, nil
}

// Upsert replaces the project with the same id in place, or prepends it.
// A project without id gets one derived from the current time.
func (r *ProjectRepository) Upsert(ctx context.Context, p domain.Project) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := loadCollection[domain.Project](ctx, r.store, r.log, ProjectsKey)
	if err != nil {
		r.metrics.RecordStoreOp("upsert", err)
		return domain.Project{}, err
	}

	if p.ID == "" {
		p.ID = domain.NewID(r.now(), func(id string) bool { return c.index(hasID(id)) >= 0 })
	}

	if i := c.index(hasID(p.ID)); i >= 0 {
		c.replace(i, p)
	} else {
		c.prepend(p)
	}

	err = c.save(ctx, r.store)
	r.metrics.RecordStoreOp("upsert", err)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Update applies fn to the stored project with id and writes it back in
// place. A missing id returns domain.ErrNotFound and nothing is written;
// an error from fn aborts the write.
func (r *ProjectRepository) Update(ctx context.Context, id string, fn func(*domain.Project) error) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := loadCollection[domain.Project](ctx, r.store, r.log, ProjectsKey)
	if err != nil {
		r.metrics.RecordStoreOp("update", err)
		return domain.Project{}, err
	}
	i := c.index(hasID(id))
	if i < 0 {
		r.metrics.RecordStoreOp("update", nil)
		return domain.Project{}, domain.ErrNotFound
	}

	p := c.records[i].item
	if err := fn(&p); err != nil {
		return domain.Project{}, err
	}
	p.ID = id
	c.replace(i, p)

	err = c.save(ctx, r.store)
	r.metrics.RecordStoreOp("update", err)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Delete removes the project with id. A missing id is a no-op reported as false.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := loadCollection[domain.Project](ctx, r.store, r.log, ProjectsKey)
	if err != nil {
		r.metrics.RecordStoreOp("delete", err)
		return false, err
	}
	i := c.index(hasID(id))
	if i < 0 {
		r.metrics.RecordStoreOp("delete", nil)
		return false, nil
	}

	c.remove(i)
	err = c.save(ctx, r.store)
	r.metrics.RecordStoreOp("delete", err)
	if err != nil {
		return false, err
	}
	return true, nil
}

func hasID(id string) func(domain.Project) bool {
	return func(p domain.Project) bool { return p.ID == id }
}
