package models

// MonthlySummary is the derived profit-and-loss rollup of one period. It is
// recomputed from the record set on demand and never persisted.
type MonthlySummary struct {
	Period                string  `json:"period"`
	Month                 string  `json:"month"`
	TotalEggProduction    int     `json:"totalEggProduction"`
	TotalEggRevenue       float64 `json:"totalEggRevenue"`
	TotalFeedExpenses     float64 `json:"totalFeedExpenses"`
	TotalMedicineExpenses float64 `json:"totalMedicineExpenses"`
	TotalExpenses         float64 `json:"totalExpenses"`
	ProfitOrLoss          float64 `json:"profitOrLoss"`
}
