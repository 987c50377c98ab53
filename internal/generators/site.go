package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

const siteFallback = `# Prompt Mestre Otimizado

## Role
Atue como um Especialista em Web Design e Estrategista Digital Sênior.

## Objetivo
Desenvolver o conteúdo textual e a estrutura visual para: %s

## Perfil do Público e Tom
- **Público**: Baseado na solicitação, foque no cliente ideal para este nicho.
- **Tom de Voz**: Profissional, Persuasivo e Claro.

## Estrutura Sugerida para a Página
1. **Hero Section**: Headline impactante + Subheadline explicativa + CTA Principal.
2. **Problema/Solução**: Aborde as dores do cliente e apresente sua oferta como solução.
3. **Benefícios**: Lista de vantagens competitivas.
4. **Prova Social**: Espaço para depoimentos ou logos de clientes.
5. **CTA Final**: Chamada para ação clara e direta.

## Instruções Adicionais
Utilize técnicas de copywriting AIDA (Atenção, Interesse, Desejo, Ação) para maximizar a conversão.`

// SiteGenerator writes a master prompt for a landing page or site.
type SiteGenerator struct{ base }

func (SiteGenerator) Kind() domain.Kind { return domain.KindSite }

func (SiteGenerator) Ready(in domain.SiteInput) bool { return !blank(in.Subject()) }

func (g SiteGenerator) Generate(ctx context.Context, in domain.SiteInput) Outcome[string] {
	subject := in.Subject()
	return generateText(ctx, g.base, domain.KindSite, map[string]string{"description": subject}, func(error) string {
		return SiteFallback(subject)
	})
}

// SiteFallback is the canned master prompt for description.
func SiteFallback(description string) string {
	return strings.TrimSpace(fmt.Sprintf(siteFallback, description))
}
