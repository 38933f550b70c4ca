package reporting

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/analytics"
	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/export"
	"github.com/mamadbah2/khamar/internal/i18n"
)

// RecordLister loads the current record snapshot.
type RecordLister interface {
	List(ctx context.Context) ([]models.DailyRecord, error)
}

// Service exposes the monthly rollup, the trend series and their renderings.
// Every call works on a fresh snapshot from the store.
type Service struct {
	store  RecordLister
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(store RecordLister, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// MonthlySummary returns the rollup of period labelled in lang. The boolean
// is false when no record falls in the month.
func (s *Service) MonthlySummary(ctx context.Context, period models.Period, lang models.Language) (models.MonthlySummary, bool, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return models.MonthlySummary{}, false, fmt.Errorf("load records: %w", err)
	}

	summary, ok := analytics.Summarize(records, period)
	if !ok {
		return models.MonthlySummary{}, false, nil
	}
	summary.Month = i18n.LongMonth(i18n.For(lang), period)
	return summary, true, nil
}

// Trend returns windowSize months ending at end, oldest first, with short
// localized labels.
func (s *Service) Trend(ctx context.Context, end models.Period, windowSize int, lang models.Language) ([]models.MonthlySummary, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	tr := i18n.For(lang)
	trend := analytics.BuildTrend(records, end, windowSize)
	for i := range trend {
		p, err := models.ParsePeriod(trend[i].Period)
		if err != nil {
			continue
		}
		trend[i].Month = i18n.ShortMonth(tr, p)
	}
	return trend, nil
}

// NoDataMessage is the localized notice shown for a month without records.
func NoDataMessage(period models.Period, lang models.Language) string {
	tr := i18n.For(lang)
	return fmt.Sprintf("%s %s.", tr.T(i18n.NoDataForMonth), i18n.LongMonth(tr, period))
}

// ExportFilename names the CSV download of period.
func ExportFilename(period models.Period) string {
	return fmt.Sprintf("Poultry_Farm_Summary_%s.csv", period.Key())
}

// SummaryCSV renders one summary as a single row CSV with two decimal
// monetary values.
func SummaryCSV(summary models.MonthlySummary, lang models.Language) string {
	tr := i18n.For(lang)
	row := export.Row{
		{Label: tr.T(i18n.ColMonth), Value: summary.Month},
		{Label: tr.T(i18n.ColEggProduction), Value: strconv.Itoa(summary.TotalEggProduction)},
		{Label: tr.T(i18n.ColEggRevenue), Value: money(summary.TotalEggRevenue)},
		{Label: tr.T(i18n.ColFeedExpenses), Value: money(summary.TotalFeedExpenses)},
		{Label: tr.T(i18n.ColMedicineExpenses), Value: money(summary.TotalMedicineExpenses)},
		{Label: tr.T(i18n.ColTotalExpenses), Value: money(summary.TotalExpenses)},
		{Label: tr.T(i18n.ColProfitOrLoss), Value: money(summary.ProfitOrLoss)},
	}
	return export.CSV([]export.Row{row})
}

// MonthlyReport renders the summary of period as a plain text message.
func (s *Service) MonthlyReport(ctx context.Context, period models.Period, lang models.Language) (string, models.MonthlySummary, bool, error) {
	summary, ok, err := s.MonthlySummary(ctx, period, lang)
	if err != nil {
		return "", models.MonthlySummary{}, false, err
	}
	if !ok {
		return NoDataMessage(period, lang), models.MonthlySummary{}, false, nil
	}

	tr := i18n.For(lang)
	lines := []string{
		fmt.Sprintf("%s: %s", tr.T(i18n.MonthlyReportTitle), summary.Month),
		fmt.Sprintf("%s: %d", tr.T(i18n.ColEggProduction), summary.TotalEggProduction),
		fmt.Sprintf("%s: %s", tr.T(i18n.ColEggRevenue), money(summary.TotalEggRevenue)),
		fmt.Sprintf("%s: %s", tr.T(i18n.ColFeedExpenses), money(summary.TotalFeedExpenses)),
		fmt.Sprintf("%s: %s", tr.T(i18n.ColMedicineExpenses), money(summary.TotalMedicineExpenses)),
		fmt.Sprintf("%s: %s", tr.T(i18n.ColTotalExpenses), money(summary.TotalExpenses)),
		fmt.Sprintf("%s: %s", tr.T(i18n.ColProfitOrLoss), money(summary.ProfitOrLoss)),
	}

	s.logger.Debug("monthly report rendered", zap.String("period", summary.Period))
	return strings.Join(lines, "\n"), summary, true, nil
}

// PreviousMonth returns the calendar month before now in loc.
func PreviousMonth(now time.Time, loc *time.Location) models.Period {
	if loc != nil {
		now = now.In(loc)
	}
	return models.Period{Year: now.Year(), Month: now.Month()}.AddMonths(-1)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
