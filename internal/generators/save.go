package generators

import (
	"context"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ProjectSaver persists a project and returns it as stored.
type ProjectSaver interface {
	Save(ctx context.Context, p domain.Project) (domain.Project, error)
}

// ContactListSaver persists a generated contact list.
type ContactListSaver interface {
	Save(ctx context.Context, query string, contacts []domain.Contact) (domain.SavedContactList, error)
}

// SaveResult tells which collection a draft was saved to.
type SaveResult struct {
	Project     *domain.Project          `json:"project,omitempty"`
	ContactList *domain.SavedContactList `json:"contactList,omitempty"`
}

// Saver turns drafts into stored records.
type Saver struct {
	projects ProjectSaver
	contacts ContactListSaver
}

func NewSaver(projects ProjectSaver, contacts ContactListSaver) *Saver {
	return &Saver{projects: projects, contacts: contacts}
}

// Save stores the draft's latest result. Contacts go to the saved contact
// lists; every other kind becomes a project, updated in place when the
// draft was opened from one.
func (s *Saver) Save(ctx context.Context, d Draft) (SaveResult, error) {
	content, ok := d.Content()
	if !ok {
		return SaveResult{}, ErrNothingToSave
	}

	switch d.Kind() {
	case domain.KindContacts:
		if len(content.Contacts) == 0 {
			return SaveResult{}, ErrNothingToSave
		}
		query := d.Input().Fields()["description"]
		list, err := s.contacts.Save(ctx, query, content.Contacts)
		if err != nil {
			return SaveResult{}, err
		}
		return SaveResult{ContactList: &list}, nil
	case domain.KindClientList:
		if len(content.Clients) == 0 {
			return SaveResult{}, ErrNothingToSave
		}
	}

	p := domain.Project{
		ID:             d.ProjectID(),
		Name:           d.Name(),
		Input:          d.Input(),
		Content:        domain.Content{Text: content.Text, Clients: content.Clients},
		StructuredData: d.StructuredData(),
	}
	saved, err := s.projects.Save(ctx, p)
	if err != nil {
		return SaveResult{}, err
	}
	d.Bind(saved.ID, saved.Name)
	return SaveResult{Project: &saved}, nil
}
