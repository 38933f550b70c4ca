package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

type staticLister struct {
	records []models.DailyRecord
	err     error
}

func (s staticLister) List(context.Context) ([]models.DailyRecord, error) {
	return s.records, s.err
}

func fixture() staticLister {
	return staticLister{records: []models.DailyRecord{
		{ID: "1", Date: "2024-01-05", CratesProduced: 10, EggPricePerPiece: 0.5, FeedTotalCost: 40, MedicineCost: 10},
		{ID: "2", Date: "2024-01-20", CratesProduced: 20, EggPricePerPiece: 0.25, FeedTotalCost: 60},
		{ID: "3", Date: "2024-03-02", CratesProduced: 1, EggPricePerPiece: 1},
	}}
}

func TestMonthlySummary(t *testing.T) {
	svc := NewService(fixture(), zap.NewNop())

	summary, ok, err := svc.MonthlySummary(context.Background(), models.Period{Year: 2024, Month: time.January}, models.LanguageEnglish)
	if err != nil || !ok {
		t.Fatalf("MonthlySummary: ok=%v err=%v", ok, err)
	}
	if summary.Month != "January 2024" || summary.TotalEggProduction != 900 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.TotalEggRevenue != 300 || summary.TotalExpenses != 110 || summary.ProfitOrLoss != 190 {
		t.Errorf("unexpected totals %+v", summary)
	}

	bn, ok, err := svc.MonthlySummary(context.Background(), models.Period{Year: 2024, Month: time.January}, models.LanguageBengali)
	if err != nil || !ok {
		t.Fatalf("MonthlySummary bn: ok=%v err=%v", ok, err)
	}
	if bn.Month == summary.Month {
		t.Errorf("expected Bengali label, got %q", bn.Month)
	}

	_, ok, err = svc.MonthlySummary(context.Background(), models.Period{Year: 2024, Month: time.February}, models.LanguageEnglish)
	if err != nil || ok {
		t.Fatalf("expected no summary for February, ok=%v err=%v", ok, err)
	}
}

func TestMonthlySummaryStoreError(t *testing.T) {
	svc := NewService(staticLister{err: errors.New("down")}, nil)
	if _, _, err := svc.MonthlySummary(context.Background(), models.Period{Year: 2024, Month: time.January}, models.LanguageEnglish); err == nil {
		t.Fatal("expected error")
	}
}

func TestTrend(t *testing.T) {
	svc := NewService(fixture(), zap.NewNop())

	trend, err := svc.Trend(context.Background(), models.Period{Year: 2024, Month: time.March}, 3, models.LanguageEnglish)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	wantLabels := []string{"Jan 24", "Feb 24", "Mar 24"}
	if len(trend) != len(wantLabels) {
		t.Fatalf("len = %d", len(trend))
	}
	for i, label := range wantLabels {
		if trend[i].Month != label {
			t.Errorf("trend[%d].Month = %q, want %q", i, trend[i].Month, label)
		}
	}
	if trend[1].TotalEggProduction != 0 || trend[2].TotalEggProduction != 30 {
		t.Errorf("unexpected values %+v", trend)
	}
}

func TestSummaryCSV(t *testing.T) {
	summary := models.MonthlySummary{
		Month:                 "January 2024",
		TotalEggProduction:    900,
		TotalEggRevenue:       300,
		TotalFeedExpenses:     100,
		TotalMedicineExpenses: 10.5,
		TotalExpenses:         110.5,
		ProfitOrLoss:          189.5,
	}

	want := "Month,Total Egg Production (pcs),Total Egg Revenue (USD),Total Feed Expenses (USD)," +
		"Total Medicine Expenses (USD),Total Expenses (USD),Profit/Loss (USD)\n" +
		`"January 2024","900","300.00","100.00","10.50","110.50","189.50"`
	if got := SummaryCSV(summary, models.LanguageEnglish); got != want {
		t.Fatalf("csv mismatch\n got: %q\nwant: %q", got, want)
	}
	if got := ExportFilename(models.Period{Year: 2024, Month: time.January}); got != "Poultry_Farm_Summary_2024-01.csv" {
		t.Errorf("filename = %q", got)
	}
}

func TestMonthlyReport(t *testing.T) {
	svc := NewService(fixture(), zap.NewNop())

	text, summary, ok, err := svc.MonthlyReport(context.Background(), models.Period{Year: 2024, Month: time.January}, models.LanguageEnglish)
	if err != nil || !ok {
		t.Fatalf("MonthlyReport: ok=%v err=%v", ok, err)
	}
	if summary.Period != "2024-01" {
		t.Errorf("period = %q", summary.Period)
	}
	for _, want := range []string{"Monthly farm report: January 2024", "Total Egg Production (pcs): 900", "Profit/Loss (USD): 190.00"} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}

	text, _, ok, err = svc.MonthlyReport(context.Background(), models.Period{Year: 2024, Month: time.February}, models.LanguageEnglish)
	if err != nil || ok {
		t.Fatalf("expected no data, ok=%v err=%v", ok, err)
	}
	if text != "No data available for February 2024." {
		t.Errorf("text = %q", text)
	}
}

func TestPreviousMonth(t *testing.T) {
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// 2024-01-31 20:00 UTC is already 1 February in Dhaka.
	now := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)
	if got := PreviousMonth(now, dhaka); got != (models.Period{Year: 2024, Month: time.January}) {
		t.Errorf("PreviousMonth = %v", got)
	}
	if got := PreviousMonth(now, time.UTC); got != (models.Period{Year: 2023, Month: time.December}) {
		t.Errorf("PreviousMonth UTC = %v", got)
	}
}
