package generators

import "github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"

// Content is any generator's output in a kind-neutral shape.
type Content struct {
	Text     string           `json:"text,omitempty"`
	Contacts []domain.Contact `json:"contacts,omitempty"`
	Clients  []domain.Client  `json:"clients,omitempty"`
}

// Empty reports whether there is nothing worth keeping.
func (c Content) Empty() bool {
	return c.Text == "" && len(c.Contacts) == 0 && len(c.Clients) == 0
}

// codec converts a generator's typed content to and from Content.
type codec[C any] struct {
	wrap   func(C) Content
	unwrap func(domain.Content) C
}

var textCodec = codec[string]{
	wrap:   func(s string) Content { return Content{Text: s} },
	unwrap: func(c domain.Content) string { return c.Text },
}

var clientsCodec = codec[[]domain.Client]{
	wrap:   func(cs []domain.Client) Content { return Content{Clients: cs} },
	unwrap: func(c domain.Content) []domain.Client { return c.Clients },
}

var contactsCodec = codec[[]domain.Contact]{
	wrap:   func(cs []domain.Contact) Content { return Content{Contacts: cs} },
	unwrap: func(domain.Content) []domain.Contact { return nil },
}
