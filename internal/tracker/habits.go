package tracker

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"habit-tracker-go/internal/models"
	"habit-tracker-go/internal/streak"
)

const (
	DefaultIcon          = "📝"
	DefaultTargetDays    = 30
	DefaultScheduledTime = "09:00"
)

// NewHabit is the input of CreateHabit. Nil fields take the defaults above.
type NewHabit struct {
	Name          string
	Icon          *string
	TargetDays    *int
	ScheduledTime *string
}

// HabitPatch carries the fields a partial update may change; nil leaves the
// field as is.
type HabitPatch struct {
	Name          *string
	Icon          *string
	ScheduledTime *string
}

const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

type ToggleResult struct {
	Status    string `json:"status"`
	NewStreak int    `json:"new_streak,omitempty"`
}

func (s *Service) ListHabits(ctx context.Context, userID uint) ([]models.Habit, error) {
	habits := []models.Habit{}
	err := s.unit(ctx, func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).Order("id").Find(&habits).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func (s *Service) CreateHabit(ctx context.Context, userID uint, in NewHabit) (*models.Habit, error) {
	habit := models.Habit{
		Name:       in.Name,
		Icon:       DefaultIcon,
		TargetDays: DefaultTargetDays,
		UserID:     userID,
	}
	scheduled := DefaultScheduledTime
	habit.ScheduledTime = &scheduled
	if in.Icon != nil {
		habit.Icon = *in.Icon
	}
	if in.TargetDays != nil {
		habit.TargetDays = *in.TargetDays
	}
	if in.ScheduledTime != nil {
		habit.ScheduledTime = in.ScheduledTime
	}

	err := s.unit(ctx, func(tx *gorm.DB) error {
		return tx.Create(&habit).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return &habit, nil
}

// ownedHabit loads a habit for update. A habit owned by someone else is
// reported exactly like a missing one.
func ownedHabit(tx *gorm.DB, userID, habitID uint) (*models.Habit, error) {
	var habit models.Habit
	err := tx.First(&habit, habitID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && habit.UserID != userID) {
		return nil, notFound("Habit not found")
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *Service) UpdateHabit(ctx context.Context, userID, habitID uint, patch HabitPatch) (*models.Habit, error) {
	var habit *models.Habit
	err := s.unit(ctx, func(tx *gorm.DB) error {
		var err error
		habit, err = ownedHabit(tx, userID, habitID)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			habit.Name = *patch.Name
		}
		if patch.Icon != nil {
			habit.Icon = *patch.Icon
		}
		if patch.ScheduledTime != nil {
			habit.ScheduledTime = patch.ScheduledTime
		}
		return tx.Save(habit).Error
	})
	if err != nil {
		return nil, err
	}
	return habit, nil
}

// Toggle flips the completion of a habit on date (YYYY-MM-DD).
//
// Removing a completion does not touch the streak counters. Adding one only
// consults the day before date; see package streak.
func (s *Service) Toggle(ctx context.Context, userID, habitID uint, date string) (ToggleResult, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return ToggleResult{}, invalid("Invalid date %q", date)
	}
	date = models.FormatDate(day)

	var res ToggleResult
	err = s.unit(ctx, func(tx *gorm.DB) error {
		habit, err := ownedHabit(tx, userID, habitID)
		if err != nil {
			return err
		}

		var existing models.DailyLog
		err = tx.Where("habit_id = ? AND date = ?", habitID, date).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			res = ToggleResult{Status: ToggleRemoved}
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := tx.Create(&models.DailyLog{HabitID: habitID, Date: date, Completed: true}).Error; err != nil {
			return err
		}

		var prev int64
		err = tx.Model(&models.DailyLog{}).
			Where("habit_id = ? AND date = ?", habitID, models.FormatDate(streak.PreviousDay(day))).
			Count(&prev).Error
		if err != nil {
			return err
		}

		next := streak.Complete(streak.State{Current: habit.CurrentStreak, Longest: habit.LongestStreak}, prev > 0)
		err = tx.Model(habit).Updates(map[string]any{
			"current_streak": next.Current,
			"longest_streak": next.Longest,
		}).Error
		if err != nil {
			return err
		}
		res = ToggleResult{Status: ToggleAdded, NewStreak: next.Current}
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return res, nil
}
