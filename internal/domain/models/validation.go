package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationCode identifies why a field was rejected.
type ValidationCode string

const (
	CodeRequired     ValidationCode = "required"
	CodeInvalidDate  ValidationCode = "invalid_date"
	CodeNegative     ValidationCode = "negative"
	CodeFlockExceeds ValidationCode = "flock_exceeds_total"
)

// ValidationErrors maps a JSON field name to the reason it was rejected.
type ValidationErrors map[string]ValidationCode

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "invalid daily record: " + strings.Join(parts, ", ")
}

// Validate checks the entry-time invariants of a record. It returns nil or a
// non-empty ValidationErrors.
func (r DailyRecord) Validate() error {
	errs := ValidationErrors{}

	if strings.TrimSpace(r.Date) == "" {
		errs["date"] = CodeRequired
	} else if _, err := r.ParsedDate(); err != nil {
		errs["date"] = CodeInvalidDate
	}

	ints := map[string]int{
		"cratesProduced":    r.CratesProduced,
		"feedBagsUsed":      r.FeedBagsUsed,
		"totalChickens":     r.TotalChickens,
		"layingChickens":    r.LayingChickens,
		"nonLayingChickens": r.NonLayingChickens,
	}
	for field, value := range ints {
		if value < 0 {
			errs[field] = CodeNegative
		}
	}

	amounts := map[string]float64{
		"eggPricePerPiece": r.EggPricePerPiece,
		"feedTotalCost":    r.FeedTotalCost,
		"medicineCost":     r.MedicineCost,
	}
	for field, value := range amounts {
		if value < 0 {
			errs[field] = CodeNegative
		}
	}

	if r.LayingChickens+r.NonLayingChickens > r.TotalChickens {
		errs["layingChickens"] = CodeFlockExceeds
		errs["nonLayingChickens"] = CodeFlockExceeds
		errs["totalChickens"] = CodeFlockExceeds
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
