package generators

import (
	"context"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ClientListGenerator finds prospective clients for a niche and location.
type ClientListGenerator struct{ base }

func (ClientListGenerator) Kind() domain.Kind { return domain.KindClientList }

func (ClientListGenerator) Ready(in domain.ClientSearchInput) bool { return !blank(in.Niche) }

func (g ClientListGenerator) Generate(ctx context.Context, in domain.ClientSearchInput) Outcome[[]domain.Client] {
	return generateRecords(ctx, g.base, domain.KindClientList, in.Fields(), func() []domain.Client {
		return ClientsFallback(in.Niche, in.Location)
	})
}

// ClientsFallback returns two example clients, echoing niche and location when given.
func ClientsFallback(niche, location string) []domain.Client {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return []domain.Client{
		{BusinessName: "Boutique Exemplo", Niche: or(niche, "Moda"), Location: or(location, "São Paulo, SP"), ContactName: "Maria Silva", Email: "contato@exemplo.com.br", Instagram: "@loja.exemplo"},
		{BusinessName: "Tech Solutions BR", Niche: or(niche, "Tecnologia"), Location: or(location, "Florianópolis, SC"), ContactName: "João Souza", Email: "comercial@techbr.com", Instagram: "@tech.solutions"},
	}
}
