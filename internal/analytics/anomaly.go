package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

const (
	// AnomalyThresholdPercent is the absolute deviation from the trailing
	// average at which a metric is flagged. The bound is inclusive.
	AnomalyThresholdPercent = 20.0

	// TrailingWindow is how far back from the evaluation instant records are
	// used as the baseline.
	TrailingWindow = 7 * 24 * time.Hour
)

// Metric names one of the values compared against the trailing average.
type Metric string

const (
	MetricEggProduction Metric = "egg_production"
	MetricFeedCost      Metric = "feed_cost"
	MetricMedicineCost  Metric = "medicine_cost"
)

// Metrics lists the evaluated metrics in reporting order.
var Metrics = []Metric{MetricEggProduction, MetricFeedCost, MetricMedicineCost}

// Unit returns the unit a metric's values are expressed in.
func (m Metric) Unit() string {
	if m == MetricEggProduction {
		return "crates"
	}
	return "USD"
}

func (m Metric) value(r models.DailyRecord) float64 {
	switch m {
	case MetricEggProduction:
		return float64(r.CratesProduced)
	case MetricFeedCost:
		return r.FeedTotalCost
	case MetricMedicineCost:
		return r.MedicineCost
	default:
		return 0
	}
}

// Status is the terminal state of an anomaly evaluation.
type Status string

const (
	StatusNoData    Status = "no_data"
	StatusNoAnomaly Status = "no_anomaly"
	StatusAnomalous Status = "anomalous"
)

// Finding is a single metric that deviated beyond the threshold.
type Finding struct {
	Metric           Metric  `json:"metric"`
	CurrentValue     float64 `json:"currentValue"`
	AverageValue     float64 `json:"averageValue"`
	DeviationPercent float64 `json:"deviationPercent"`
}

// Outcome is the result of Detect. Findings is non-empty only when Status is
// StatusAnomalous; WindowSize is the number of baseline records used.
type Outcome struct {
	Status     Status    `json:"status"`
	Findings   []Finding `json:"findings,omitempty"`
	WindowSize int       `json:"windowSize"`
}

// Detect compares subject against the average of the history records dated
// within TrailingWindow of now, excluding subject itself. The window is
// anchored at now rather than at the subject's own date, so a backdated entry
// is compared with the current week.
func Detect(subject models.DailyRecord, history []models.DailyRecord, now time.Time) Outcome {
	window := trailingWindow(subject, history, now)
	if len(window) == 0 {
		return Outcome{Status: StatusNoData}
	}

	outcome := Outcome{Status: StatusNoAnomaly, WindowSize: len(window)}
	for _, metric := range Metrics {
		average := mean(window, metric)
		if average == 0 {
			continue
		}

		current := metric.value(subject)
		deviation := (current - average) / average * 100
		if math.Abs(deviation) >= AnomalyThresholdPercent {
			outcome.Findings = append(outcome.Findings, Finding{
				Metric:           metric,
				CurrentValue:     current,
				AverageValue:     average,
				DeviationPercent: deviation,
			})
		}
	}

	if len(outcome.Findings) > 0 {
		outcome.Status = StatusAnomalous
	}
	return outcome
}

func trailingWindow(subject models.DailyRecord, history []models.DailyRecord, now time.Time) []models.DailyRecord {
	cutoff := now.Add(-TrailingWindow)

	window := make([]models.DailyRecord, 0, len(history))
	for _, record := range history {
		if record.ID == subject.ID {
			continue
		}
		date, err := record.ParsedDate()
		if err != nil || date.Before(cutoff) {
			continue
		}
		window = append(window, record)
	}
	return window
}

func mean(records []models.DailyRecord, metric Metric) float64 {
	var sum float64
	for _, record := range records {
		sum += metric.value(record)
	}
	return sum / float64(len(records))
}

// MetricNamer resolves the display name of a metric, typically localized.
type MetricNamer func(Metric) string

// DescribeFindings renders the findings of one record as a single line
// suitable for embedding in a narrative prompt.
func DescribeFindings(date string, findings []Finding, name MetricNamer) string {
	parts := make([]string, 0, len(findings))
	for _, f := range findings {
		unit := f.Metric.Unit()
		parts = append(parts, fmt.Sprintf("%s: %.2f %s (Avg: %.2f %s, Deviation: %.2f%%)",
			name(f.Metric), f.CurrentValue, unit, f.AverageValue, unit, f.DeviationPercent))
	}
	return fmt.Sprintf("For %s: %s", date, strings.Join(parts, "; "))
}
