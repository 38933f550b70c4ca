package models

import (
	"errors"
	"time"
)

// EggsPerCrate is the fixed number of eggs packed in one crate.
const EggsPerCrate = 30

// DateLayout is the calendar date format used by DailyRecord.Date.
const DateLayout = "2006-01-02"

var (
	// ErrRecordNotFound is returned when no record matches the requested id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateRecord is returned when a record with the same id already exists.
	ErrDuplicateRecord = errors.New("record already exists")
)

// DailyRecord captures one farm-day of production, cost and flock data.
type DailyRecord struct {
	ID               string  `bson:"_id" json:"id"`
	Date             string  `bson:"date" json:"date"`
	CratesProduced   int     `bson:"crates_produced" json:"cratesProduced"`
	EggPricePerPiece float64 `bson:"egg_price_per_piece" json:"eggPricePerPiece"`

	FeedBagsUsed  int     `bson:"feed_bags_used" json:"feedBagsUsed"`
	FeedTotalCost float64 `bson:"feed_total_cost" json:"feedTotalCost"`

	MedicineName string  `bson:"medicine_name" json:"medicineName"`
	MedicineCost float64 `bson:"medicine_cost" json:"medicineCost"`

	TotalChickens     int `bson:"total_chickens" json:"totalChickens"`
	LayingChickens    int `bson:"laying_chickens" json:"layingChickens"`
	NonLayingChickens int `bson:"non_laying_chickens" json:"nonLayingChickens"`
}

// EggsProduced returns the number of individual eggs in the record.
func (r DailyRecord) EggsProduced() int {
	return r.CratesProduced * EggsPerCrate
}

// EggRevenue returns the value of the day's production at the recorded price.
func (r DailyRecord) EggRevenue() float64 {
	return float64(r.EggsProduced()) * r.EggPricePerPiece
}

// ParsedDate interprets Date as midnight UTC.
func (r DailyRecord) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// PeriodKey returns the YYYY-MM prefix of Date, or "" when Date is too short.
func (r DailyRecord) PeriodKey() string {
	if len(r.Date) < 7 {
		return ""
	}
	return r.Date[:7]
}
