package models

import "time"

// DateLayout is the storage and wire format of DailyLog.Date.
const DateLayout = "2006-01-02"

// DailyLog marks a habit as completed on Date. A missing row means the
// habit was not completed that day.
type DailyLog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Date      string `gorm:"size:10;not null;uniqueIndex:idx_daily_logs_habit_date,priority:2" json:"date"`
	Completed bool   `gorm:"not null;default:true" json:"completed"`

	HabitID uint  `gorm:"not null;uniqueIndex:idx_daily_logs_habit_date,priority:1" json:"habit_id"`
	Habit   Habit `gorm:"foreignKey:HabitID" json:"-"`
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders the calendar date of t, ignoring its time of day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
