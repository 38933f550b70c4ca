package analytics

import (
	"github.com/mamadbah2/khamar/internal/domain/models"
)

// DefaultTrendWindow is the number of months charted by the dashboard.
const DefaultTrendWindow = 12

// BuildTrend returns one summary per month for the windowSize months ending
// at windowEnd, oldest first. Months without records are zero-valued rather
// than omitted so chart axes stay contiguous.
func BuildTrend(records []models.DailyRecord, windowEnd models.Period, windowSize int) []models.MonthlySummary {
	if windowSize <= 0 {
		return []models.MonthlySummary{}
	}

	trend := make([]models.MonthlySummary, 0, windowSize)
	for offset := windowSize - 1; offset >= 0; offset-- {
		period := windowEnd.AddMonths(-offset)
		summary, _ := accumulate(records, period.Key())
		summary.Month = ShortMonthLabel(period)
		trend = append(trend, summary)
	}
	return trend
}
