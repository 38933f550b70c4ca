// Package analytics turns a snapshot of daily records into monthly
// profit-and-loss summaries, trend series and anomaly findings. Every
// function is pure: inputs are never mutated and no ambient state is read.
package analytics

import (
	"github.com/mamadbah2/khamar/internal/domain/models"
)

// Summarize aggregates the records of one period. The boolean is false when
// no record falls in the period, which is distinct from a zero-valued summary.
func Summarize(records []models.DailyRecord, period models.Period) (models.MonthlySummary, bool) {
	summary, matched := accumulate(records, period.Key())
	if matched == 0 {
		return models.MonthlySummary{}, false
	}
	summary.Month = LongMonthLabel(period)
	return summary, true
}

// accumulate sums the records whose date prefix equals key and reports how
// many matched.
func accumulate(records []models.DailyRecord, key string) (models.MonthlySummary, int) {
	summary := models.MonthlySummary{Period: key}
	matched := 0

	for _, record := range records {
		if record.PeriodKey() != key {
			continue
		}
		summary.TotalEggProduction += record.EggsProduced()
		summary.TotalEggRevenue += record.EggRevenue()
		summary.TotalFeedExpenses += record.FeedTotalCost
		summary.TotalMedicineExpenses += record.MedicineCost
		matched++
	}

	summary.TotalExpenses = summary.TotalFeedExpenses + summary.TotalMedicineExpenses
	summary.ProfitOrLoss = summary.TotalEggRevenue - summary.TotalExpenses
	return summary, matched
}

// LongMonthLabel renders a period as "January 2024".
func LongMonthLabel(p models.Period) string {
	return p.Start().Format("January 2006")
}

// ShortMonthLabel renders a period as "Jan 24", the chart axis form.
func ShortMonthLabel(p models.Period) string {
	return p.Start().Format("Jan 06")
}
