// Package records owns the daily record mutation flow: validation, store
// round trip, refetch and the post-save narrative pipelines.
package records

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/analytics"
	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/i18n"
	"github.com/mamadbah2/khamar/internal/metrics"
)

// Store is the durable owner of daily records.
type Store interface {
	List(ctx context.Context) ([]models.DailyRecord, error)
	Create(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error)
	Update(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error)
	Delete(ctx context.Context, id string) error
}

// Narrator produces free-text analyses of saved records and anomalies.
type Narrator interface {
	AnalyzeRecord(ctx context.Context, record models.DailyRecord, lang models.Language) (models.Insight, error)
	AnalyzeAnomaly(ctx context.Context, description string, lang models.Language) (models.Insight, error)
}

// Publisher receives the terminal result of each pipeline.
type Publisher interface {
	Publish(result models.PipelineResult)
}

// Notifier pushes a text message to the farm owner.
type Notifier interface {
	Notify(ctx context.Context, body string) error
}

// SaveResult is returned after an acknowledged create or update.
type SaveResult struct {
	Record   models.DailyRecord    `json:"record"`
	Message  string                `json:"message"`
	Analysis models.PipelineResult `json:"analysis"`
	Anomaly  AnomalyResult         `json:"anomaly"`

	// Records is the refetched set the anomaly pipeline evaluated.
	Records []models.DailyRecord `json:"-"`
}

// AnomalyResult pairs the detector outcome with its pipeline result.
type AnomalyResult struct {
	models.PipelineResult
	Outcome     analytics.Outcome `json:"outcome"`
	Description string            `json:"description,omitempty"`
}

// Service coordinates record mutations.
type Service struct {
	store     Store
	narrator  Narrator
	publisher Publisher
	notifier  Notifier
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithNotifier sends anomaly alerts to the owner.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithPublisher forwards pipeline results, typically to the insight board.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithClock replaces the wall clock used to anchor the anomaly window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires a record service.
func NewService(store Store, narrator Narrator, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:    store,
		narrator: narrator,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every record, newest date first.
func (s *Service) List(ctx context.Context) ([]models.DailyRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		metrics.RecordStoreFailures.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("list records: %w", err)
	}
	sorted := make([]models.DailyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })
	return sorted, nil
}

// Create stores a new record, assigning an id when none is given.
func (s *Service) Create(ctx context.Context, record models.DailyRecord, lang models.Language) (SaveResult, error) {
	if err := record.Validate(); err != nil {
		return SaveResult{}, err
	}
	if record.ID == "" {
		record.ID = s.newID()
	}

	saved, err := s.store.Create(ctx, record)
	if err != nil {
		metrics.RecordStoreFailures.WithLabelValues("create").Inc()
		return SaveResult{}, fmt.Errorf("create record: %w", err)
	}
	metrics.RecordMutations.WithLabelValues("create").Inc()
	s.logger.Info("daily record created", zap.String("id", saved.ID), zap.String("date", saved.Date))

	return s.afterSave(ctx, saved, lang, i18n.RecordSaved), nil
}

// Update replaces the record with the same id.
func (s *Service) Update(ctx context.Context, record models.DailyRecord, lang models.Language) (SaveResult, error) {
	if err := record.Validate(); err != nil {
		return SaveResult{}, err
	}
	if record.ID == "" {
		return SaveResult{}, models.ValidationErrors{"id": models.CodeRequired}
	}

	saved, err := s.store.Update(ctx, record)
	if err != nil {
		metrics.RecordStoreFailures.WithLabelValues("update").Inc()
		return SaveResult{}, fmt.Errorf("update record: %w", err)
	}
	metrics.RecordMutations.WithLabelValues("update").Inc()
	s.logger.Info("daily record updated", zap.String("id", saved.ID), zap.String("date", saved.Date))

	return s.afterSave(ctx, saved, lang, i18n.RecordUpdated), nil
}

// Delete removes the record with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		metrics.RecordStoreFailures.WithLabelValues("delete").Inc()
		return fmt.Errorf("delete record: %w", err)
	}
	metrics.RecordMutations.WithLabelValues("delete").Inc()
	s.logger.Info("daily record deleted", zap.String("id", id))
	return nil
}

// afterSave refetches the record set and runs the daily analysis and the
// anomaly pipeline concurrently. Neither pipeline can fail the save.
func (s *Service) afterSave(ctx context.Context, saved models.DailyRecord, lang models.Language, message i18n.Key) SaveResult {
	tr := i18n.For(lang)
	result := SaveResult{Record: saved, Message: tr.T(message)}

	records, refetchErr := s.store.List(ctx)
	if refetchErr != nil {
		metrics.RecordStoreFailures.WithLabelValues("list").Inc()
		s.logger.Warn("refetch after save failed", zap.String("id", saved.ID), zap.Error(refetchErr))
	}
	result.Records = records

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Analysis = s.dailyAnalysis(ctx, saved, tr)
	}()
	go func() {
		defer wg.Done()
		if refetchErr != nil {
			result.Anomaly = AnomalyResult{PipelineResult: s.finish(models.PipelineResult{
				Pipeline: models.PipelineAnomaly,
				Error:    tr.T(i18n.LoadRecordsFailed),
			})}
			return
		}
		result.Anomaly = s.anomalyPipeline(ctx, saved, records, tr)
	}()
	wg.Wait()

	return result
}

func (s *Service) dailyAnalysis(ctx context.Context, saved models.DailyRecord, tr i18n.Translator) models.PipelineResult {
	res := models.PipelineResult{Pipeline: models.PipelineDaily}
	if s.narrator == nil {
		res.Error = tr.T(i18n.AnalysisFailed)
		return s.finish(res)
	}

	insight, err := s.narrator.AnalyzeRecord(ctx, saved, tr.Language())
	if err != nil {
		res.Error = failureMessage(err, tr.T(i18n.AnalysisFailed))
	} else {
		res.Insight = &insight
	}
	return s.finish(res)
}

func (s *Service) anomalyPipeline(ctx context.Context, saved models.DailyRecord, records []models.DailyRecord, tr i18n.Translator) AnomalyResult {
	outcome := analytics.Detect(saved, records, s.now())
	metrics.AnomalyOutcomes.WithLabelValues(string(outcome.Status)).Inc()

	res := AnomalyResult{
		PipelineResult: models.PipelineResult{Pipeline: models.PipelineAnomaly},
		Outcome:        outcome,
	}

	switch outcome.Status {
	case analytics.StatusNoData:
		res.Message = tr.T(i18n.NoRecentData)
		res.PipelineResult = s.finish(res.PipelineResult)
		return res
	case analytics.StatusNoAnomaly:
		res.Message = tr.T(i18n.NoAnomaly)
		res.PipelineResult = s.finish(res.PipelineResult)
		return res
	}

	res.Description = analytics.DescribeFindings(saved.Date, outcome.Findings, i18n.MetricName(tr))
	s.logger.Info("anomaly detected",
		zap.String("id", saved.ID),
		zap.Int("findings", len(outcome.Findings)),
		zap.Int("window", outcome.WindowSize))

	var analysis string
	if s.narrator == nil {
		res.Error = tr.T(i18n.AnomalyFailed)
	} else if insight, err := s.narrator.AnalyzeAnomaly(ctx, res.Description, tr.Language()); err != nil {
		res.Error = failureMessage(err, tr.T(i18n.AnomalyFailed))
	} else {
		res.Insight = &insight
		analysis = insight.Text
	}
	res.PipelineResult = s.finish(res.PipelineResult)

	s.alert(ctx, res.Description, analysis, tr)
	return res
}

func (s *Service) alert(ctx context.Context, description, analysis string, tr i18n.Translator) {
	if s.notifier == nil {
		return
	}
	parts := []string{tr.T(i18n.AnomalyAlertTitle), description}
	if analysis != "" {
		parts = append(parts, analysis)
	}
	if err := s.notifier.Notify(ctx, strings.Join(parts, "\n\n")); err != nil {
		s.logger.Warn("anomaly alert not delivered", zap.Error(err))
	}
}

func (s *Service) finish(res models.PipelineResult) models.PipelineResult {
	res.CompletedAt = s.now().UTC()
	if s.publisher != nil {
		s.publisher.Publish(res)
	}
	return res
}

func failureMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
