package database

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"habit-tracker-go/internal/logger"
	"habit-tracker-go/internal/models"
)

const (
	defaultFullName = "Habit Tracker User"
	defaultAge      = 25
	defaultBio      = "Building better habits every day"
	defaultPicture  = "https://api.dicebear.com/7.x/avataaars/svg?seed=HabitMaster"
)

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Friendship{}, &models.Habit{}, &models.DailyLog{})
}

// EnsureDefaultUser creates the default account unless a user with that
// username already exists. It is safe to call on every start.
func EnsureDefaultUser(ctx context.Context, db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("username = ?", models.DefaultUsername).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		code, err := NewFriendCode()
		if err != nil {
			return err
		}
		age := defaultAge
		bio := defaultBio
		pic := defaultPicture
		user = models.User{
			Username:       models.DefaultUsername,
			PasswordHash:   "",
			FullName:       defaultFullName,
			Age:            &age,
			Bio:            &bio,
			ProfilePicture: &pic,
			FriendCode:     code,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		logger.Info("created default user", "id", user.ID, "friend_code", user.FriendCode)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ensure default user: %w", err)
	}
	return &user, nil
}

// Bootstrap migrates the schema and ensures the default user exists.
func Bootstrap(ctx context.Context, db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	_, err := EnsureDefaultUser(ctx, db)
	return err
}

// NewFriendCode returns 4 random bytes as 8 upper-case hex characters.
func NewFriendCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("friend code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
