package narrative

import (
	"context"
	"fmt"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/pkg/clients/anthropic"
)

const farmAdvisorSystem = "You are an assistant for a small poultry farm. Answer concisely and practically."

// AnthropicProvider generates insights with Claude. It has no search tool, so
// grounded requests are answered from model knowledge without sources.
type AnthropicProvider struct {
	client   anthropic.Client
	profiles map[models.Pipeline]Profile
}

// NewAnthropicProvider wires a provider; only Temperature and
// MaxOutputTokens of each profile are used.
func NewAnthropicProvider(client anthropic.Client, profiles map[models.Pipeline]Profile) *AnthropicProvider {
	return &AnthropicProvider{client: client, profiles: profiles}
}

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (models.Insight, error) {
	profile := p.profiles[req.Pipeline]

	text, err := p.client.Complete(ctx, anthropic.CompletionRequest{
		System:      farmAdvisorSystem,
		Prompt:      req.Prompt,
		Temperature: profile.Temperature,
		MaxTokens:   profile.MaxOutputTokens,
	})
	if err != nil {
		return models.Insight{}, fmt.Errorf("anthropic %s generation: %w", req.Pipeline, err)
	}

	return models.Insight{Text: text}, nil
}
