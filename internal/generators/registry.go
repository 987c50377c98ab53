package generators

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/metrics"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

const (
	DefaultDraftTTL  = 2 * time.Hour
	DefaultMaxDrafts = 1000
)

type entry struct {
	draft    Draft
	lastUsed time.Time
}

// Registry keeps open drafts in memory. Drafts idle longer than ttl are
// swept on access; when full, the least recently used draft is evicted.
type Registry struct {
	set     *Set
	ttl     time.Duration
	max     int
	metrics *metrics.Metrics
	now     func() time.Time

	mu     sync.Mutex
	drafts map[string]*entry
}

func NewRegistry(set *Set, ttl time.Duration, max int, m *metrics.Metrics) *Registry {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	if max <= 0 {
		max = DefaultMaxDrafts
	}
	return &Registry{
		set:     set,
		ttl:     ttl,
		max:     max,
		metrics: m,
		now:     time.Now,
		drafts:  make(map[string]*entry),
	}
}

// Open creates a new draft of kind.
func (r *Registry) Open(kind domain.Kind, fields map[string]string) (Draft, error) {
	d, err := r.set.NewDraft(uuid.NewString(), kind, fields)
	if err != nil {
		return nil, err
	}
	r.put(d)
	return d, nil
}

// OpenProject creates a draft that edits a saved project.
func (r *Registry) OpenProject(p domain.Project) (Draft, error) {
	d, err := r.set.ResumeDraft(uuid.NewString(), p)
	if err != nil {
		return nil, err
	}
	r.put(d)
	return d, nil
}

// Get returns a live draft and refreshes its idle timer.
func (r *Registry) Get(id string) (Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)
	e, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	e.lastUsed = now
	return e.draft, nil
}

// Len reports how many drafts are open.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(r.now())
	return len(r.drafts)
}

func (r *Registry) put(d Draft) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)
	for len(r.drafts) >= r.max {
		r.evictOldestLocked()
	}
	r.drafts[d.ID()] = &entry{draft: d, lastUsed: now}
	r.metrics.SetDrafts(len(r.drafts))
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, e := range r.drafts {
		if now.Sub(e.lastUsed) > r.ttl {
			delete(r.drafts, id)
		}
	}
	r.metrics.SetDrafts(len(r.drafts))
}

func (r *Registry) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range r.drafts {
		if oldestID == "" || e.lastUsed.Before(oldest) {
			oldestID, oldest = id, e.lastUsed
		}
	}
	delete(r.drafts, oldestID)
}
