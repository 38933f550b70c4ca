package analytics

import (
	"math"
	"testing"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

func mustPeriod(t *testing.T, key string) models.Period {
	t.Helper()
	p, err := models.ParsePeriod(key)
	if err != nil {
		t.Fatalf("ParsePeriod(%q): %v", key, err)
	}
	return p
}

func TestSummarize_EggTotals(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024-03-01", CratesProduced: 10, EggPricePerPiece: 0.10},
		{ID: "2", Date: "2024-03-02", CratesProduced: 20, EggPricePerPiece: 0.10},
		{ID: "3", Date: "2024-02-28", CratesProduced: 99, EggPricePerPiece: 1},
	}

	summary, ok := Summarize(records, mustPeriod(t, "2024-03"))
	if !ok {
		t.Fatal("expected a summary for 2024-03")
	}
	if summary.TotalEggProduction != 900 {
		t.Errorf("TotalEggProduction = %d, want 900", summary.TotalEggProduction)
	}
	if math.Abs(summary.TotalEggRevenue-90) > 1e-9 {
		t.Errorf("TotalEggRevenue = %f, want 90.00", summary.TotalEggRevenue)
	}
	if summary.Month != "March 2024" {
		t.Errorf("Month = %q, want %q", summary.Month, "March 2024")
	}
	if summary.Period != "2024-03" {
		t.Errorf("Period = %q, want 2024-03", summary.Period)
	}
}

func TestSummarize_NoRecordsYieldsNoSummary(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024-03-01", CratesProduced: 10},
	}

	summary, ok := Summarize(records, mustPeriod(t, "2024-04"))
	if ok {
		t.Fatalf("expected no summary, got %+v", summary)
	}
	if summary != (models.MonthlySummary{}) {
		t.Errorf("expected zero value alongside false, got %+v", summary)
	}

	if _, ok := Summarize(nil, mustPeriod(t, "2024-04")); ok {
		t.Error("expected no summary for an empty record set")
	}
}

func TestSummarize_ExpenseAndProfitIdentities(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024-05-01", CratesProduced: 7, EggPricePerPiece: 0.13, FeedTotalCost: 41.7, MedicineCost: 3.33},
		{ID: "2", Date: "2024-05-09", CratesProduced: 3, EggPricePerPiece: 0.11, FeedTotalCost: 12.05, MedicineCost: 0},
		{ID: "3", Date: "2024-05-31", CratesProduced: 0, EggPricePerPiece: 0.12, FeedTotalCost: 0, MedicineCost: 18.9},
	}

	summary, ok := Summarize(records, mustPeriod(t, "2024-05"))
	if !ok {
		t.Fatal("expected a summary")
	}
	if summary.TotalExpenses != summary.TotalFeedExpenses+summary.TotalMedicineExpenses {
		t.Errorf("TotalExpenses %v != feed %v + medicine %v", summary.TotalExpenses, summary.TotalFeedExpenses, summary.TotalMedicineExpenses)
	}
	if summary.ProfitOrLoss != summary.TotalEggRevenue-summary.TotalExpenses {
		t.Errorf("ProfitOrLoss %v != revenue %v - expenses %v", summary.ProfitOrLoss, summary.TotalEggRevenue, summary.TotalExpenses)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	// Binary-exact amounts so that any summation order gives identical floats.
	records := []models.DailyRecord{
		{ID: "a", Date: "2024-06-01", CratesProduced: 4, EggPricePerPiece: 0.25, FeedTotalCost: 12.5, MedicineCost: 0.75},
		{ID: "b", Date: "2024-06-02", CratesProduced: 8, EggPricePerPiece: 0.5, FeedTotalCost: 30, MedicineCost: 2.25},
		{ID: "c", Date: "2024-06-03", CratesProduced: 1, EggPricePerPiece: 0.125, FeedTotalCost: 6.5, MedicineCost: 0},
		{ID: "d", Date: "2024-07-01", CratesProduced: 50, EggPricePerPiece: 1, FeedTotalCost: 1, MedicineCost: 1},
	}
	period := mustPeriod(t, "2024-06")
	want, _ := Summarize(records, period)

	permutations := [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, order := range permutations {
		shuffled := make([]models.DailyRecord, 0, len(order))
		for _, idx := range order {
			shuffled = append(shuffled, records[idx])
		}
		got, ok := Summarize(shuffled, period)
		if !ok {
			t.Fatalf("order %v: expected a summary", order)
		}
		if got != want {
			t.Errorf("order %v: got %+v, want %+v", order, got, want)
		}
	}
}

func TestSummarize_IgnoresShortDates(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024", CratesProduced: 10},
		{ID: "2", Date: "", CratesProduced: 10},
	}
	if _, ok := Summarize(records, mustPeriod(t, "2024-01")); ok {
		t.Error("records without a full YYYY-MM prefix must not match")
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	records := []models.DailyRecord{
		{ID: "1", Date: "2024-03-01", CratesProduced: 10, EggPricePerPiece: 0.1},
	}
	before := records[0]
	Summarize(records, mustPeriod(t, "2024-03"))
	if records[0] != before {
		t.Errorf("input mutated: %+v", records[0])
	}
}
