package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

type fakeReporter struct {
	asked models.Period
	ok    bool
	err   error
}

func (f *fakeReporter) MonthlyReport(_ context.Context, p models.Period, _ models.Language) (string, models.MonthlySummary, bool, error) {
	f.asked = p
	if f.err != nil {
		return "", models.MonthlySummary{}, false, f.err
	}
	if !f.ok {
		return "No data available for " + p.Key(), models.MonthlySummary{}, false, nil
	}
	return "report " + p.Key(), models.MonthlySummary{Period: p.Key()}, true, nil
}

type fakeSheets struct{ rows []models.MonthlySummary }

func (f *fakeSheets) AppendSummary(_ context.Context, s models.MonthlySummary) error {
	f.rows = append(f.rows, s)
	return nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, body string) error {
	f.sent = append(f.sent, body)
	return f.err
}

func newTestScheduler(r Reporter, sh SummaryWriter, n Notifier) *Scheduler {
	s := NewScheduler("0 7 1 * *", time.UTC, models.LanguageEnglish, r, sh, n, zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC) }
	return s
}

func TestRunMonthlyReport(t *testing.T) {
	reporter := &fakeReporter{ok: true}
	sheets := &fakeSheets{}
	notifier := &fakeNotifier{}

	if err := newTestScheduler(reporter, sheets, notifier).RunMonthlyReport(context.Background()); err != nil {
		t.Fatalf("RunMonthlyReport: %v", err)
	}
	if reporter.asked != (models.Period{Year: 2023, Month: time.December}) {
		t.Errorf("asked for %v", reporter.asked)
	}
	if len(sheets.rows) != 1 || sheets.rows[0].Period != "2023-12" {
		t.Errorf("sheets rows = %+v", sheets.rows)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "report 2023-12" {
		t.Errorf("sent = %v", notifier.sent)
	}
}

func TestRunMonthlyReportWithoutData(t *testing.T) {
	sheets := &fakeSheets{}
	notifier := &fakeNotifier{}

	if err := newTestScheduler(&fakeReporter{}, sheets, notifier).RunMonthlyReport(context.Background()); err != nil {
		t.Fatalf("RunMonthlyReport: %v", err)
	}
	if len(sheets.rows) != 0 {
		t.Error("empty months are not archived")
	}
	if len(notifier.sent) != 1 {
		t.Error("owner should still be told there is no data")
	}
}

func TestRunMonthlyReportErrors(t *testing.T) {
	err := newTestScheduler(&fakeReporter{err: errors.New("store down")}, nil, nil).RunMonthlyReport(context.Background())
	if err == nil {
		t.Fatal("expected reporter error")
	}

	err = newTestScheduler(&fakeReporter{ok: true}, nil, &fakeNotifier{err: errors.New("401")}).RunMonthlyReport(context.Background())
	if err == nil {
		t.Fatal("expected notifier error")
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler("not a cron", time.UTC, models.LanguageEnglish, &fakeReporter{}, nil, nil, nil)
	if err := s.Start(); err == nil {
		s.Stop()
		t.Fatal("expected schedule error")
	}
}
