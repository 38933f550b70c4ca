// Package narrative builds prompts from farm data and requests free-text
// insights from a generation backend. Returned text is never interpreted.
package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/metrics"
)

var (
	// ErrDisabled is returned when no generation backend is configured.
	ErrDisabled = errors.New("narrative insights are not configured")

	// ErrEmptyResponse is returned when the backend answered without text.
	ErrEmptyResponse = errors.New("narrative service returned an empty response")
)

// Cache stores market insights, which only change with the period.
type Cache interface {
	GetInsight(ctx context.Context, key string) (models.Insight, bool, error)
	SetInsight(ctx context.Context, key string, insight models.Insight) error
}

// Requester is the single entry point to the narrative backend. It performs
// no retries.
type Requester struct {
	provider Provider
	cache    Cache
	logger   *zap.Logger
}

// NewRequester wires a requester. A nil provider yields ErrDisabled on every call.
func NewRequester(provider Provider, cache Cache, logger *zap.Logger) *Requester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Requester{provider: provider, cache: cache, logger: logger}
}

// Enabled reports whether a backend is configured.
func (r *Requester) Enabled() bool {
	return r != nil && r.provider != nil
}

// Request sends one prompt and returns the text or a single error.
func (r *Requester) Request(ctx context.Context, req Request) (models.Insight, error) {
	if !r.Enabled() {
		metrics.NarrativeRequests.WithLabelValues(string(req.Pipeline), "disabled").Inc()
		return models.Insight{}, ErrDisabled
	}

	start := time.Now()
	insight, err := r.provider.Generate(ctx, req)
	metrics.NarrativeLatency.WithLabelValues(string(req.Pipeline)).Observe(time.Since(start).Seconds())

	if err == nil && strings.TrimSpace(insight.Text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		metrics.NarrativeRequests.WithLabelValues(string(req.Pipeline), "error").Inc()
		r.logger.Warn("narrative request failed", zap.String("pipeline", string(req.Pipeline)), zap.Error(err))
		return models.Insight{}, err
	}

	metrics.NarrativeRequests.WithLabelValues(string(req.Pipeline), "ok").Inc()
	r.logger.Debug("narrative request completed",
		zap.String("pipeline", string(req.Pipeline)),
		zap.Int("sources", len(insight.Sources)),
		zap.Duration("duration", time.Since(start)))
	return insight, nil
}

// AnalyzeRecord reviews a freshly saved record.
func (r *Requester) AnalyzeRecord(ctx context.Context, record models.DailyRecord, lang models.Language) (models.Insight, error) {
	return r.Request(ctx, Request{
		Pipeline: models.PipelineDaily,
		Prompt:   DailyRecordPrompt(record, lang),
		Language: lang,
	})
}

// AnalyzeAnomaly explains a finding description produced by the detector.
func (r *Requester) AnalyzeAnomaly(ctx context.Context, description string, lang models.Language) (models.Insight, error) {
	return r.Request(ctx, Request{
		Pipeline: models.PipelineAnomaly,
		Prompt:   AnomalyPrompt(description, lang),
		Language: lang,
	})
}

// MarketInsights returns search-grounded egg and feed market prices for a
// period, served from the cache when possible.
func (r *Requester) MarketInsights(ctx context.Context, period models.Period, lang models.Language) (models.Insight, error) {
	key := fmt.Sprintf("market:%s:%s", period.Key(), lang)

	if r.cache != nil {
		cached, ok, err := r.cache.GetInsight(ctx, key)
		if err != nil {
			r.logger.Debug("market insight cache lookup failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	insight, err := r.Request(ctx, Request{
		Pipeline: models.PipelineMarket,
		Prompt:   MarketPrompt(period, lang),
		Language: lang,
		Grounded: true,
	})
	if err != nil {
		return models.Insight{}, err
	}

	if r.cache != nil {
		if err := r.cache.SetInsight(ctx, key, insight); err != nil {
			r.logger.Debug("market insight cache store failed", zap.String("key", key), zap.Error(err))
		}
	}
	return insight, nil
}
