package repository

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ContactListsKey is the storage key for saved contact lists.
const ContactListsKey = "saved_contacts"

// ContactListRepository stores generated contact lists apart from projects.
type ContactListRepository struct {
	store kv.Storage
	log   *zap.Logger
	now   func() time.Time

	mu sync.Mutex
}

// NewContactListRepository creates a contact list repository over store.
func NewContactListRepository(store kv.Storage, log *zap.Logger) *ContactListRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactListRepository{store: store, log: log, now: time.Now}
}

// List returns saved lists, newest first.
func (r *ContactListRepository) List(ctx context.Context) ([]domain.SavedContactList, error) {
	c, err := loadCollection[domain.SavedContactList](ctx, r.store, r.log, ContactListsKey)
	if err != nil {
		return nil, err
	}
	return c.items(), nil
}

// Save prepends a new list built from query and contacts.
func (r *ContactListRepository) Save(ctx context.Context, query string, contacts []domain.Contact) (domain.SavedContactList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := loadCollection[domain.SavedContactList](ctx, r.store, r.log, ContactListsKey)
	if err != nil {
		return domain.SavedContactList{}, err
	}

	now := r.now()
	id := now.UnixMilli()
	for c.index(func(l domain.SavedContactList) bool { return l.ID == id }) >= 0 {
		id++
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	entry := domain.SavedContactList{
		ID:       id,
		Date:     domain.FormatDate(now),
		Query:    query,
		Contacts: contacts,
	}

	c.prepend(entry)
	if err := c.save(ctx, r.store); err != nil {
		return domain.SavedContactList{}, err
	}
	return entry, nil
}
