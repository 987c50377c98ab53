package generators

import (
	"context"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

const contractFallbackPrefix = "Erro ao gerar contrato. Por favor, tente novamente.\n\nDetalhes do erro: "

// ContractGenerator drafts a commercial contract.
type ContractGenerator struct{ base }

func (ContractGenerator) Kind() domain.Kind { return domain.KindContract }

func (ContractGenerator) Ready(in domain.ContractInput) bool { return !blank(in.ContractType) }

func (g ContractGenerator) Generate(ctx context.Context, in domain.ContractInput) Outcome[string] {
	return generateText(ctx, g.base, domain.KindContract, in.Fields(), ContractFallback)
}

// ContractFallback embeds the failure in the contract body so it is visible.
func ContractFallback(cause error) string {
	detail := "erro desconhecido"
	if cause != nil {
		detail = cause.Error()
	}
	return contractFallbackPrefix + detail
}
