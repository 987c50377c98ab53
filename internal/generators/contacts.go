package generators

import (
	"context"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ContactsGenerator invents a list of plausible leads for a description.
type ContactsGenerator struct{ base }

func (ContactsGenerator) Kind() domain.Kind { return domain.KindContacts }

func (ContactsGenerator) Ready(in domain.ContactsInput) bool { return !blank(in.Description) }

func (g ContactsGenerator) Generate(ctx context.Context, in domain.ContactsInput) Outcome[[]domain.Contact] {
	return generateRecords(ctx, g.base, domain.KindContacts, in.Fields(), ContactsFallback)
}

// ContactsFallback returns the three example contacts.
func ContactsFallback() []domain.Contact {
	return []domain.Contact{
		{Name: "Ana Silva", Role: "CEO", Company: "Moda Chic", Email: "ana@modachic.com", Instagram: "@anasilva_moda"},
		{Name: "Carlos Souza", Role: "Diretor de Marketing", Company: "Style Vibe", Email: "carlos@stylevibe.com", Instagram: "@carlos.vibe"},
		{Name: "Mariana Costa", Role: "Fundadora", Company: "Eco Wear", Email: "mari@ecowear.com.br", Instagram: "@maricosta.eco"},
	}
}
