package domain

import (
	"encoding/json"
	"fmt"
)

// Content is the generated output of a project. Text kinds use Text;
// client lists use Clients.
type Content struct {
	Text    string
	Clients []Client
}

// Project is a saved generation.
type Project struct {
	ID             string
	Name           string
	Date           string
	Input          Input
	Content        Content
	StructuredData json.RawMessage
}

// Kind is derived from the input variant; a project without input is a site.
func (p Project) Kind() Kind {
	if p.Input == nil {
		return KindSite
	}
	return p.Input.Kind()
}

// wireProject is the stored shape, shared with the original browser client.
type wireProject struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Date           string          `json:"date"`
	Type           Kind            `json:"type,omitempty"`
	Prompt         string          `json:"prompt"`
	Clients        []Client        `json:"clients,omitempty"`
	FormData       map[string]any  `json:"formData"`
	StructuredData json.RawMessage `json:"structuredData,omitempty"`
}

func (p Project) MarshalJSON() ([]byte, error) {
	kind := p.Kind()
	w := wireProject{
		ID:             p.ID,
		Name:           p.Name,
		Date:           p.Date,
		Type:           kind,
		Prompt:         p.Content.Text,
		FormData:       map[string]any{},
		StructuredData: p.StructuredData,
	}
	if p.Input != nil {
		for k, v := range p.Input.Fields() {
			w.FormData[k] = v
		}
	}
	if kind == KindClientList {
		clients := p.Content.Clients
		if clients == nil {
			clients = []Client{}
		}
		// prompt keeps the serialized list so older readers still find it
		raw, err := json.Marshal(clients)
		if err != nil {
			return nil, fmt.Errorf("encode clients: %w", err)
		}
		w.Prompt = string(raw)
		w.Clients = clients
	}
	return json.Marshal(w)
}

func (p *Project) UnmarshalJSON(b []byte) error {
	var w wireProject
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	kind := w.Type
	if !kind.Persistable() {
		kind = KindSite
	}

	fields := make(map[string]string, len(w.FormData))
	for k, v := range w.FormData {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	input, err := InputFromFields(kind, fields)
	if err != nil {
		return err
	}

	*p = Project{
		ID:             w.ID,
		Name:           w.Name,
		Date:           w.Date,
		Input:          input,
		StructuredData: w.StructuredData,
	}
	if kind == KindClientList {
		p.Content.Clients = decodeClients(w)
		return nil
	}
	p.Content.Text = w.Prompt
	return nil
}

// decodeClients prefers the typed array and falls back to the legacy
// JSON-in-prompt form. A malformed legacy array yields an empty list.
func decodeClients(w wireProject) []Client {
	if w.Clients != nil {
		return w.Clients
	}
	var clients []Client
	if w.Prompt == "" || json.Unmarshal([]byte(w.Prompt), &clients) != nil || clients == nil {
		return []Client{}
	}
	return clients
}
