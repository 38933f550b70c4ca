package narrative

import (
	"context"
	"fmt"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/pkg/clients/gemini"
)

// GeminiGenerator is the subset of the Gemini client used here.
type GeminiGenerator interface {
	Generate(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error)
}

// GeminiProvider maps pipelines onto Gemini models. It is the only provider
// that honours Request.Grounded.
type GeminiProvider struct {
	client   GeminiGenerator
	profiles map[models.Pipeline]Profile
}

// NewGeminiProvider wires a provider. Pipelines without a profile use the daily one.
func NewGeminiProvider(client GeminiGenerator, profiles map[models.Pipeline]Profile) *GeminiProvider {
	return &GeminiProvider{client: client, profiles: profiles}
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (models.Insight, error) {
	profile, ok := p.profiles[req.Pipeline]
	if !ok {
		profile = p.profiles[models.PipelineDaily]
	}

	res, err := p.client.Generate(ctx, gemini.GenerateRequest{
		Model:           profile.Model,
		Prompt:          req.Prompt,
		Temperature:     profile.Temperature,
		TopP:            profile.TopP,
		TopK:            profile.TopK,
		MaxOutputTokens: profile.MaxOutputTokens,
		GoogleSearch:    req.Grounded,
	})
	if err != nil {
		return models.Insight{}, fmt.Errorf("gemini %s generation: %w", req.Pipeline, err)
	}

	return models.Insight{Text: res.Text, Sources: res.Sources}, nil
}
