package stats

import (
	"errors"
	"fmt"
	"time"

	"habit-tracker-go/internal/models"
)

var ErrInvalidMonth = errors.New("invalid month")

// Month is a validated calendar month.
type Month struct {
	Year  int
	Month time.Month
	Days  int
}

// NewMonth validates year and month and computes the month length.
func NewMonth(year, month int) (Month, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return Month{}, fmt.Errorf("%w: %d-%d", ErrInvalidMonth, year, month)
	}
	// Day 0 of the next month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return Month{Year: year, Month: time.Month(month), Days: last.Day()}, nil
}

// ParseMonth accepts "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return NewMonth(t.Year(), int(t.Month()))
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	m, _ := NewMonth(t.Year(), int(t.Month()))
	return m
}

// Day returns the date of day d (1-based) in YYYY-MM-DD form.
func (m Month) Day(d int) string {
	return models.FormatDate(time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.UTC))
}

// First is the first day of the month in YYYY-MM-DD form.
func (m Month) First() string { return m.Day(1) }

// Last is the last day of the month in YYYY-MM-DD form.
func (m Month) Last() string { return m.Day(m.Days) }
