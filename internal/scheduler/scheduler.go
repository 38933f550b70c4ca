package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/service/reporting"
)

// Reporter renders the monthly report of a period.
type Reporter interface {
	MonthlyReport(ctx context.Context, period models.Period, lang models.Language) (string, models.MonthlySummary, bool, error)
}

// SummaryWriter archives a monthly summary, typically in a spreadsheet.
type SummaryWriter interface {
	AppendSummary(ctx context.Context, summary models.MonthlySummary) error
}

// Notifier pushes a text message to the farm owner.
type Notifier interface {
	Notify(ctx context.Context, body string) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	location *time.Location
	lang     models.Language
	reporter Reporter
	sheets   SummaryWriter
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a scheduler running the monthly report on schedule in
// loc. sheets and notifier are optional.
func NewScheduler(schedule string, loc *time.Location, lang models.Language, reporter Reporter, sheets SummaryWriter, notifier Notifier, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}

	// Standard 5 field cron (min, hour, dom, month, dow) evaluated in the farm timezone.
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:     c,
		schedule: schedule,
		location: loc,
		lang:     lang,
		reporter: reporter,
		sheets:   sheets,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule), zap.String("timezone", s.location.String()))

	if _, err := s.cron.AddFunc(s.schedule, s.sendMonthlyReport); err != nil {
		return fmt.Errorf("schedule monthly report %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendMonthlyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.RunMonthlyReport(ctx); err != nil {
		s.logger.Error("monthly report failed", zap.Error(err))
	}
}

// RunMonthlyReport summarizes the previous calendar month, archives it when
// a summary exists and sends the report text to the owner.
func (s *Scheduler) RunMonthlyReport(ctx context.Context) error {
	period := reporting.PreviousMonth(s.now(), s.location)
	s.logger.Info("generating monthly report", zap.String("period", period.Key()))

	text, summary, ok, err := s.reporter.MonthlyReport(ctx, period, s.lang)
	if err != nil {
		return fmt.Errorf("generate monthly report: %w", err)
	}

	if ok && s.sheets != nil {
		if err := s.sheets.AppendSummary(ctx, summary); err != nil {
			s.logger.Error("failed to archive monthly summary", zap.String("period", period.Key()), zap.Error(err))
		}
	}

	if s.notifier == nil {
		return nil
	}
	if err := s.notifier.Notify(ctx, text); err != nil {
		return fmt.Errorf("send monthly report: %w", err)
	}
	s.logger.Info("monthly report sent successfully", zap.String("period", period.Key()))
	return nil
}
