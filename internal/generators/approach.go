package generators

import (
	"context"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// ApproachFallback is shown when an outreach message could not be generated.
const ApproachFallback = "Erro ao gerar mensagem. Tente novamente."

// ApproachGenerator writes an outreach message for a target lead.
type ApproachGenerator struct{ base }

func (ApproachGenerator) Kind() domain.Kind { return domain.KindApproach }

func (ApproachGenerator) Ready(in domain.ApproachInput) bool { return !blank(in.Target) }

func (g ApproachGenerator) Generate(ctx context.Context, in domain.ApproachInput) Outcome[string] {
	return generateText(ctx, g.base, domain.KindApproach, in.Fields(), func(error) string {
		return ApproachFallback
	})
}
