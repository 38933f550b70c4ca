package narrative

import (
	"context"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

// Request is what the core hands to a text generation backend.
type Request struct {
	Pipeline models.Pipeline
	Prompt   string
	Language models.Language
	// Grounded asks the backend to consult web search and cite sources.
	Grounded bool
}

// Provider generates free text for a prompt. Implementations must return an
// error rather than an empty insight.
type Provider interface {
	Generate(ctx context.Context, req Request) (models.Insight, error)
}

// Profile tunes generation for one pipeline.
type Profile struct {
	Model           string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// DefaultProfiles trades latency for depth: record analysis is quick, an
// anomaly explanation gets the larger model and budget.
func DefaultProfiles(dailyModel, anomalyModel, marketModel string) map[models.Pipeline]Profile {
	return map[models.Pipeline]Profile{
		models.PipelineDaily:   {Model: dailyModel, Temperature: 0.7, TopP: 0.9, TopK: 40, MaxOutputTokens: 250},
		models.PipelineAnomaly: {Model: anomalyModel, Temperature: 0.8, TopP: 0.95, TopK: 60, MaxOutputTokens: 400},
		models.PipelineMarket:  {Model: marketModel, Temperature: 0.5, TopP: 0.8, TopK: 30, MaxOutputTokens: 300},
	}
}
