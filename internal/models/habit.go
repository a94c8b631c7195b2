package models

import "time"

type Habit struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Icon          string  `json:"icon"`
	TargetDays    int     `json:"target_days"`
	ScheduledTime *string `gorm:"size:5" json:"scheduled_time"` // "HH:MM"
	CurrentStreak int     `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int     `gorm:"not null;default:0" json:"longest_streak"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Logs []DailyLog `gorm:"foreignKey:HabitID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
