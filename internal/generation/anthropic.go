package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = "claude-haiku-4-5-20251001"

const anthropicMaxTokens = 4096

// Anthropic calls the Messages API.
type Anthropic struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropic creates the provider. Extra request options (base URL, HTTP
// client) are passed through to the SDK; retries stay disabled.
func NewAnthropic(apiKey, model string, opts ...option.RequestOption) (*Anthropic, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key required")
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	all := append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	return &Anthropic{
		client: anthropic.NewClient(all...),
		model:  anthropic.Model(model),
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	model := a.model
	if req.Model != "" {
		model = anthropic.Model(req.Model)
	}
	system := req.SystemInstruction
	if req.Format == FormatJSON {
		system += "\n\nResponda somente com JSON."
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       model,
		MaxTokens:   anthropicMaxTokens,
		System:      []anthropic.TextBlockParam{{Text: system}},
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserContent)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
