package models

import (
	"fmt"
	"time"
)

// PeriodLayout is the textual form of a Period.
const PeriodLayout = "2006-01"

// Period identifies one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a YYYY-MM key.
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse(PeriodLayout, value)
	if err != nil {
		return Period{}, fmt.Errorf("parse period %q: %w", value, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf returns the calendar month containing t, in t's location.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// AddMonths shifts the period by n months; n may be negative.
func (p Period) AddMonths(n int) Period {
	return PeriodOf(p.Start().AddDate(0, n, 0))
}

// Start returns midnight UTC of the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Key returns the YYYY-MM form used as a record date prefix.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) String() string {
	return p.Key()
}
