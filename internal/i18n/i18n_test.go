package i18n

import (
	"testing"

	"github.com/mamadbah2/khamar/internal/analytics"
	"github.com/mamadbah2/khamar/internal/domain/models"
)

func TestFor_FallsBackToEnglish(t *testing.T) {
	tr := For(models.Language("fr"))
	if tr.Language() != models.LanguageEnglish {
		t.Fatalf("language = %s, want en", tr.Language())
	}
	if got := tr.T(NoAnomaly); got != "No significant anomaly detected." {
		t.Errorf("T(NoAnomaly) = %q", got)
	}
	if got := tr.T(Key("missing_key")); got != "missing_key" {
		t.Errorf("unknown key should echo itself, got %q", got)
	}
}

func TestCatalog_BengaliCoversEveryEnglishKey(t *testing.T) {
	for key := range catalog[models.LanguageEnglish] {
		if catalog[models.LanguageBengali][key] == "" {
			t.Errorf("bengali catalog missing %s", key)
		}
	}
}

func TestNoDataAndNoAnomalyDiffer(t *testing.T) {
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageBengali} {
		tr := For(lang)
		if tr.T(NoRecentData) == tr.T(NoAnomaly) {
			t.Errorf("%s: no-data and no-anomaly must have distinct messages", lang)
		}
	}
}

func TestMonthLabels(t *testing.T) {
	p := models.Period{Year: 2024, Month: 3}

	if got := LongMonth(For(models.LanguageEnglish), p); got != "March 2024" {
		t.Errorf("english long = %q", got)
	}
	if got := ShortMonth(For(models.LanguageEnglish), p); got != "Mar 24" {
		t.Errorf("english short = %q", got)
	}
	if got := LongMonth(For(models.LanguageBengali), p); got != "মার্চ ২০২৪" {
		t.Errorf("bengali long = %q", got)
	}
	if got := ShortMonth(For(models.LanguageBengali), p); got != "মার্চ ২৪" {
		t.Errorf("bengali short = %q", got)
	}
}

func TestMetricName(t *testing.T) {
	name := MetricName(For(models.LanguageEnglish))
	if got := name(analytics.MetricFeedCost); got != "Feed cost anomaly" {
		t.Errorf("feed cost name = %q", got)
	}
}
