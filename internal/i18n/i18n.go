// Package i18n resolves typed message keys into English or Bengali text.
package i18n

import (
	"github.com/mamadbah2/khamar/internal/analytics"
	"github.com/mamadbah2/khamar/internal/domain/models"
)

// Key identifies a user-facing message.
type Key string

const (
	NoRecentData        Key = "no_recent_data"
	NoAnomaly           Key = "no_anomaly"
	EggProductionAnom   Key = "egg_production_anomaly"
	FeedCostAnom        Key = "feed_cost_anomaly"
	MedicineCostAnom    Key = "medicine_cost_anomaly"
	NoDataForMonth      Key = "no_data_for_month"
	CannotBeNegative    Key = "cannot_be_negative"
	FieldRequired       Key = "field_required"
	InvalidDate         Key = "invalid_date"
	FlockExceedsTotal   Key = "flock_exceeds_total"
	CorrectFormErrors   Key = "correct_form_errors"
	RecordSaved         Key = "record_saved"
	RecordUpdated       Key = "record_updated"
	SaveFailed          Key = "save_failed"
	UpdateFailed        Key = "update_failed"
	DeleteFailed        Key = "delete_failed"
	LoadRecordsFailed   Key = "load_records_failed"
	AnalysisFailed      Key = "analysis_failed"
	AnomalyFailed       Key = "anomaly_failed"
	MarketFailed        Key = "market_failed"
	InvalidCredentials  Key = "invalid_credentials"
	ColMonth            Key = "col_month"
	ColEggProduction    Key = "col_egg_production"
	ColEggRevenue       Key = "col_egg_revenue"
	ColFeedExpenses     Key = "col_feed_expenses"
	ColMedicineExpenses Key = "col_medicine_expenses"
	ColTotalExpenses    Key = "col_total_expenses"
	ColProfitOrLoss     Key = "col_profit_or_loss"
	MonthlyReportTitle  Key = "monthly_report_title"
	AnomalyAlertTitle   Key = "anomaly_alert_title"
)

// Translator resolves message keys for one language.
type Translator interface {
	T(key Key) string
	Language() models.Language
}

type table struct {
	lang    models.Language
	entries map[Key]string
}

// For returns the translator of lang. Missing entries fall back to English,
// then to the key itself.
func For(lang models.Language) Translator {
	if entries, ok := catalog[lang]; ok {
		return table{lang: lang, entries: entries}
	}
	return table{lang: models.LanguageEnglish, entries: catalog[models.LanguageEnglish]}
}

func (t table) T(key Key) string {
	if value, ok := t.entries[key]; ok && value != "" {
		return value
	}
	if value, ok := catalog[models.LanguageEnglish][key]; ok {
		return value
	}
	return string(key)
}

func (t table) Language() models.Language {
	return t.lang
}

// MetricName returns the localized name of an anomaly metric.
func MetricName(tr Translator) analytics.MetricNamer {
	return func(m analytics.Metric) string {
		switch m {
		case analytics.MetricEggProduction:
			return tr.T(EggProductionAnom)
		case analytics.MetricFeedCost:
			return tr.T(FeedCostAnom)
		case analytics.MetricMedicineCost:
			return tr.T(MedicineCostAnom)
		default:
			return string(m)
		}
	}
}

// ValidationMessage maps a validation code to its message key.
func ValidationMessage(code models.ValidationCode) Key {
	switch code {
	case models.CodeNegative:
		return CannotBeNegative
	case models.CodeRequired:
		return FieldRequired
	case models.CodeInvalidDate:
		return InvalidDate
	case models.CodeFlockExceeds:
		return FlockExceedsTotal
	default:
		return Key(code)
	}
}
