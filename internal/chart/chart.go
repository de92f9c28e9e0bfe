// Package chart buckets dated amounts into a trailing window of calendar months.
package chart

import (
	"encoding/json"
	"errors"
	"time"

	"shop-admin-api/internal/calendar"

	"github.com/shopspring/decimal"
)

// ErrInvalidWindow is returned for a window shorter than one month
var ErrInvalidWindow = errors.New("chart window must be at least one month")

// Record is one successful transaction reduced to what the chart needs
type Record struct {
	CreatedAt time.Time
	Amount    decimal.Decimal
}

// Bucket is the revenue of one calendar month
type Bucket struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
	key   calendar.MonthKey
}

// Key returns the calendar month of the bucket
func (b Bucket) Key() calendar.MonthKey { return b.key }

type bucketJSON struct {
	Month string      `json:"month"`
	Value json.Number `json:"value"`
}

// MarshalJSON writes the value as a JSON number rather than a quoted decimal
func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(bucketJSON{Month: b.Month, Value: json.Number(b.Value.String())})
}

func (b *Bucket) UnmarshalJSON(data []byte) error {
	var raw bucketJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, err := decimal.NewFromString(raw.Value.String())
	if err != nil {
		return err
	}
	b.Month, b.Value = raw.Month, value
	return nil
}

// WindowStart is the first instant counted by a window of n months ending in now's month
func WindowStart(cal calendar.Calendar, now time.Time, n int) (time.Time, error) {
	if n < 1 {
		return time.Time{}, ErrInvalidWindow
	}
	return cal.StartOf(cal.MonthOf(now).AddMonths(-(n - 1))), nil
}

// Aggregate returns exactly n buckets, oldest first, ending with the month of now.
// Months without records are zero. Records outside the window are ignored.
func Aggregate(cal calendar.Calendar, now time.Time, n int, records []Record) ([]Bucket, error) {
	if n < 1 {
		return nil, ErrInvalidWindow
	}

	current := cal.MonthOf(now)
	oldest := current.AddMonths(-(n - 1))

	// expected months first, so every bucket exists before any sum is added
	buckets := make([]Bucket, n)
	index := make(map[calendar.MonthKey]int, n)
	for i := 0; i < n; i++ {
		k := oldest.AddMonths(i)
		buckets[i] = Bucket{Month: cal.Label(k), Value: decimal.Zero, key: k}
		index[k] = i
	}

	for _, r := range records {
		i, ok := index[cal.MonthOf(r.CreatedAt)]
		if !ok {
			continue
		}
		buckets[i].Value = buckets[i].Value.Add(r.Amount)
	}
	return buckets, nil
}

// Total sums the values of all buckets
func Total(buckets []Bucket) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Value)
	}
	return sum
}
