package stats

import (
	"habit-tracker-go/internal/models"
)

type DayAggregate struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	CompletedCount int    `json:"completed_count"`
	TotalActive    int    `json:"total_active"`
	Percent        int    `json:"percent"`
}

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type Summary struct {
	DailyAggregates []DayAggregate `json:"daily_aggregates"`
	OverallProgress Progress       `json:"overall_progress"`
	TotalHabits     int            `json:"total_habits"`
}

// Percent is completed/total as a whole percentage rounded down, or 0 when
// total is not positive.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}

// Summarize builds the per-day and overall figures for m from the logs that
// fall inside it. Every habit counts as potential on every day of the month,
// regardless of when it was created.
func Summarize(m Month, totalHabits int, logs []models.DailyLog) Summary {
	counts := make([]int, m.Days+1)
	for _, l := range logs {
		d, err := models.ParseDate(l.Date)
		if err != nil || d.Year() != m.Year || d.Month() != m.Month {
			continue
		}
		counts[d.Day()]++
	}

	days := make([]DayAggregate, 0, m.Days)
	for day := 1; day <= m.Days; day++ {
		days = append(days, DayAggregate{
			Date:           m.Day(day),
			Day:            day,
			CompletedCount: counts[day],
			TotalActive:    totalHabits,
			Percent:        Percent(counts[day], totalHabits),
		})
	}

	return Summary{
		DailyAggregates: days,
		OverallProgress: Progress{
			Completed: len(logs),
			Total:     totalHabits * m.Days,
		},
		TotalHabits: totalHabits,
	}
}
