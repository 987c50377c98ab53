package generation

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

// Template describes how one kind is asked of the provider.
type Template struct {
	System      string
	User        *template.Template
	Temperature float32
	Format      Format
	ArrayField  string // object key that may wrap the array in JSON responses
}

const siteSystem = `Atue como um Engenheiro de Prompts Sênior e Especialista em Criação de Conteúdo para Web.

Sua tarefa é receber uma solicitação do usuário e transformá-la em um PROMPT MESTRE altamente detalhado e estruturado.
O prompt gerado será usado posteriormente em LLMs para criar sites, landing pages ou campanhas.

O prompt de saída deve conter:
1. **Role**: Defina o papel da IA (ex: Copywriter Sênior, Designer UX).
2. **Objetivo Claro**: O que deve ser feito.
3. **Contexto e Detalhes**: Expanda a ideia do usuário. Se ele foi breve, infira um público-alvo e tom de voz adequados ao nicho.
4. **Estrutura Recomendada**: Liste as seções ideais para o tipo de página solicitada (ex: Hero, Prova Social, Benefícios, FAQ, CTA).
5. **Instruções de Estilo**: Sugestões de design e copy.

A resposta deve ser APENAS o prompt gerado, pronto para copiar e usar.`

const contactsSystem = `Você é um assistente de geração de leads.
Com base na descrição do usuário, gere uma lista de 5 a 10 contatos FICTÍCIOS mas realistas.
Retorne APENAS um JSON válido contendo um array de objetos.
Não inclua markdown (como ` + "```json" + `).

Cada objeto deve ter as propriedades:
- name (Nome completo)
- role (Cargo)
- company (Empresa)
- email (Email corporativo fictício)
- instagram (Handle do Instagram, ex: @usuario)`

const clientsSystem = `Atue como um especialista em inteligência de mercado e geração de leads no Brasil.
Gere uma lista de CLIENTES POTENCIAIS (empresas ou profissionais) brasileiros baseada nos critérios.

Gere dados fictícios mas altamente realistas.
Retorne APENAS um JSON válido contendo um array de objetos. Não use markdown.

Cada objeto deve ter:
- businessName (Nome da Empresa)
- niche (Nicho de atuação)
- location (Cidade/Estado)
- contactName (Nome do responsável)
- email (Email comercial)
- instagram (Perfil do Instagram, ex: @perfil)`

const contractSystem = `Atue como um Advogado Especialista em Contratos Comerciais e Digitais.
Redija um contrato profissional, completo e juridicamente válido (sob a lei brasileira/geral) com base nas informações fornecidas.

O contrato deve ser bem estruturado com títulos, cláusulas numeradas e espaços para preenchimento (identificados por [colchetes]) onde necessário.`

const approachSystem = `Atue como um Especialista em Copywriting e Vendas (SDR/Closer).
Sua missão é criar uma mensagem de abordagem fria ou morna, altamente persuasiva e personalizada.

A mensagem deve ser pronta para enviar (WhatsApp, Email ou LinkedIn), com assunto (se email) e corpo.`

var templates = map[domain.Kind]Template{
	domain.KindSite: {
		System:      siteSystem,
		User:        mustUser("site", `O que eu preciso: {{.description}}`),
		Temperature: 0.75,
		Format:      FormatText,
	},
	domain.KindContacts: {
		System:      contactsSystem,
		User:        mustUser("contacts", `Quem eu quero adicionar: {{.description}}`),
		Temperature: 0.7,
		Format:      FormatJSON,
		ArrayField:  "contacts",
	},
	domain.KindClientList: {
		System: clientsSystem,
		User: mustUser("client_list", `Nicho: {{.niche}}
Localização: {{.location}}
Canais Desejados: {{.channels}}
Critérios Adicionais: {{.criteria}}`),
		Temperature: 0.7,
		Format:      FormatJSON,
		ArrayField:  "clients",
	},
	domain.KindContract: {
		System: contractSystem,
		User: mustUser("contract", `Tipo de Contrato: {{.contractType}}
Cláusulas Específicas: {{.clauses}}
Prazos e Pagamento: {{.terms}}
Confidencialidade/Exclusividade: {{.confidentiality}}

Gere o contrato completo.`),
		Temperature: 0.5,
		Format:      FormatText,
	},
	domain.KindApproach: {
		System: approachSystem,
		User: mustUser("approach", `Cliente/Lead Alvo: {{.target}}
Tom de Voz: {{.tone}}
Objetivo da Abordagem: {{.objective}}
Detalhes Específicos: {{.details}}

Escreva a mensagem de abordagem.`),
		Temperature: 0.7,
		Format:      FormatText,
	},
}

// TemplateFor returns the template registered for kind.
func TemplateFor(kind domain.Kind) (Template, error) {
	t, ok := templates[kind]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}
	return t, nil
}

// Render interpolates fields into the user content. Missing fields render empty.
func (t Template) Render(fields map[string]string) (string, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	var b strings.Builder
	if err := t.User.Execute(&b, fields); err != nil {
		return "", fmt.Errorf("render %s: %w", t.User.Name(), err)
	}
	return b.String(), nil
}

func mustUser(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=zero").Parse(text))
}
