package sheets

import (
	"testing"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

func TestSummaryRow(t *testing.T) {
	row := SummaryRow(models.MonthlySummary{
		Period:                "2024-01",
		Month:                 "January 2024",
		TotalEggProduction:    900,
		TotalEggRevenue:       300,
		TotalFeedExpenses:     100,
		TotalMedicineExpenses: 10,
		TotalExpenses:         110,
		ProfitOrLoss:          190,
	})

	want := []interface{}{"2024-01", "January 2024", 900, 300.0, 100.0, 10.0, 110.0, 190.0}
	if len(row) != len(want) {
		t.Fatalf("len = %d", len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v (%T), want %v (%T)", i, row[i], row[i], want[i], want[i])
		}
	}
}
