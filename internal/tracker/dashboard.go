package tracker

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"habit-tracker-go/internal/models"
	"habit-tracker-go/internal/stats"
)

type UserInfo struct {
	Name       string  `json:"name"`
	FriendCode string  `json:"friend_code"`
	Pic        *string `json:"pic"`
}

type MonthMeta struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	DaysInMonth int `json:"days_in_month"`
}

type Dashboard struct {
	UserInfo UserInfo          `json:"user_info"`
	Habits   []models.Habit    `json:"habits"`
	Logs     []models.DailyLog `json:"logs"`
	Stats    stats.Summary     `json:"stats"`
	Meta     MonthMeta         `json:"meta"`
}

// Dashboard bundles the caller's habits, their completions in the month and
// the per-day aggregates.
func (s *Service) Dashboard(ctx context.Context, userID uint, year, month int) (*Dashboard, error) {
	m, err := stats.NewMonth(year, month)
	if err != nil {
		return nil, invalid("Invalid date")
	}

	var (
		user   models.User
		habits = []models.Habit{}
		logs   = []models.DailyLog{}
	)
	err = s.unit(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Order("scheduled_time").Order("id").Find(&habits).Error; err != nil {
			return err
		}
		if len(habits) == 0 {
			return nil
		}

		ids := make([]uint, len(habits))
		for i, h := range habits {
			ids[i] = h.ID
		}
		return tx.Where("habit_id IN ? AND date >= ? AND date <= ?", ids, m.First(), m.Last()).
			Order("date").Order("id").
			Find(&logs).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &Dashboard{
		UserInfo: UserInfo{
			Name:       user.FullName,
			FriendCode: user.FriendCode,
			Pic:        user.ProfilePicture,
		},
		Habits: habits,
		Logs:   logs,
		Stats:  stats.Summarize(m, len(habits), logs),
		Meta: MonthMeta{
			Year:        m.Year,
			Month:       int(m.Month),
			DaysInMonth: m.Days,
		},
	}, nil
}

// MonthLogs lists the caller's completions within month ("YYYY-MM").
func (s *Service) MonthLogs(ctx context.Context, userID uint, month string) ([]models.DailyLog, error) {
	m, err := stats.ParseMonth(month)
	if err != nil {
		return nil, invalid("Invalid month %q", month)
	}

	logs := []models.DailyLog{}
	err = s.unit(ctx, func(tx *gorm.DB) error {
		return tx.Joins("JOIN habits ON habits.id = daily_logs.habit_id").
			Where("habits.user_id = ? AND daily_logs.date >= ? AND daily_logs.date <= ?", userID, m.First(), m.Last()).
			Order("daily_logs.date").Order("daily_logs.id").
			Find(&logs).Error
	})
	if err != nil {
		return nil, fmt.Errorf("month logs: %w", err)
	}
	return logs, nil
}
