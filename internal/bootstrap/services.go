package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/config"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generation"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/metrics"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/repository"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/service"
)

// Services is everything the API and the CLI share.
type Services struct {
	Store        kv.Storage
	Metrics      *metrics.Metrics
	Generation   *generation.Service
	Generators   *generators.Set
	Drafts       *generators.Registry
	Projects     *service.ProjectService
	ContactLists *repository.ContactListRepository
	Saver        *generators.Saver
}

// NewServices wires the store, provider and generators from cfg.
func NewServices(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Services, error) {
	if log == nil {
		log = zap.NewNop()
	}
	store, err := OpenStorage(ctx, cfg.Storage.Driver, cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}
	return NewServicesWith(store, NewProvider(ctx, cfg.Generation, log), cfg, log), nil
}

// NewServicesWith wires services over an already open store and provider.
func NewServicesWith(store kv.Storage, provider generation.Provider, cfg *config.Config, log *zap.Logger) *Services {
	m := metrics.New()

	gen := generation.NewService(provider, generation.Options{
		Model:     cfg.Generation.Model,
		Timeout:   cfg.Generation.Timeout,
		RateLimit: cfg.Generation.RateLimit,
		RateBurst: cfg.Generation.RateBurst,
		Logger:    log,
		Metrics:   m,
	})
	set := generators.NewSet(gen, log, m)

	projects := service.NewProjectService(repository.NewProjectRepository(store, log, repository.WithMetrics(m)))
	contactLists := repository.NewContactListRepository(store, log)

	return &Services{
		Store:        store,
		Metrics:      m,
		Generation:   gen,
		Generators:   set,
		Drafts:       generators.NewRegistry(set, cfg.Drafts.TTL, cfg.Drafts.MaxDrafts, m),
		Projects:     projects,
		ContactLists: contactLists,
		Saver:        generators.NewSaver(projects, contactLists),
	}
}

// Close releases the store.
func (s *Services) Close() error {
	return s.Store.Close()
}
