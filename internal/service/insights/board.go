// Package insights keeps the most recent result of each narrative pipeline.
package insights

import (
	"sync"
	"time"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

var order = []models.Pipeline{models.PipelineDaily, models.PipelineAnomaly, models.PipelineMarket}

// Board holds one result per pipeline. The last published completion wins,
// regardless of when its request started.
type Board struct {
	mu      sync.RWMutex
	results map[models.Pipeline]models.PipelineResult
	now     func() time.Time
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{results: make(map[models.Pipeline]models.PipelineResult), now: time.Now}
}

// Publish stores result, stamping CompletedAt when unset.
func (b *Board) Publish(result models.PipelineResult) {
	if result.CompletedAt.IsZero() {
		result.CompletedAt = b.now().UTC()
	}
	b.mu.Lock()
	b.results[result.Pipeline] = result
	b.mu.Unlock()
}

// Latest returns the last result of pipeline.
func (b *Board) Latest(pipeline models.Pipeline) (models.PipelineResult, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.results[pipeline]
	return r, ok
}

// Snapshot lists the known results in daily, anomaly, market order.
func (b *Board) Snapshot() []models.PipelineResult {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.PipelineResult, 0, len(b.results))
	for _, p := range order {
		if r, ok := b.results[p]; ok {
			out = append(out, r)
		}
	}
	return out
}
