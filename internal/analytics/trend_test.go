package analytics

import (
	"testing"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

func TestBuildTrend_ZeroFillsMissingMonths(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024-03-15", CratesProduced: 10, EggPricePerPiece: 0.5, FeedTotalCost: 20, MedicineCost: 5},
	}

	trend := BuildTrend(records, mustPeriod(t, "2024-03"), DefaultTrendWindow)
	if len(trend) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(trend))
	}

	if trend[0].Period != "2023-04" {
		t.Errorf("oldest period = %s, want 2023-04", trend[0].Period)
	}
	if trend[11].Period != "2024-03" {
		t.Errorf("newest period = %s, want 2024-03", trend[11].Period)
	}

	for i, summary := range trend[:11] {
		zero := models.MonthlySummary{Period: summary.Period, Month: summary.Month}
		if summary != zero {
			t.Errorf("entry %d (%s) should be zero-valued, got %+v", i, summary.Period, summary)
		}
	}

	last := trend[11]
	if last.TotalEggProduction != 300 || last.TotalEggRevenue != 150 || last.TotalExpenses != 25 || last.ProfitOrLoss != 125 {
		t.Errorf("unexpected populated month: %+v", last)
	}
	if last.Month != "Mar 24" {
		t.Errorf("label = %q, want %q", last.Month, "Mar 24")
	}
}

func TestBuildTrend_ChronologicalAcrossYearBoundary(t *testing.T) {
	trend := BuildTrend(nil, mustPeriod(t, "2025-02"), 4)
	want := []string{"2024-11", "2024-12", "2025-01", "2025-02"}
	if len(trend) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(trend))
	}
	for i, key := range want {
		if trend[i].Period != key {
			t.Errorf("entry %d = %s, want %s", i, trend[i].Period, key)
		}
	}
}

func TestBuildTrend_Idempotent(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024-01-05", CratesProduced: 3, EggPricePerPiece: 0.25},
		{ID: "2", Date: "2023-12-05", CratesProduced: 6, FeedTotalCost: 9},
	}
	end := mustPeriod(t, "2024-01")

	first := BuildTrend(records, end, DefaultTrendWindow)
	second := BuildTrend(records, end, DefaultTrendWindow)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildTrend_NonPositiveWindow(t *testing.T) {
	if got := BuildTrend(nil, mustPeriod(t, "2024-01"), 0); len(got) != 0 {
		t.Errorf("expected empty trend, got %d entries", len(got))
	}
}
