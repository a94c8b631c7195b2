package tracker

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"habit-tracker-go/internal/models"
	"habit-tracker-go/internal/stats"
)

const (
	FriendAdded   = "added"
	FriendAlready = "already friends"
)

type AddFriendResult struct {
	Status     string `json:"status"`
	FriendName string `json:"friend_name,omitempty"`
}

// AddFriend creates the edge userID -> owner of friendCode. The reverse edge
// is not created.
func (s *Service) AddFriend(ctx context.Context, userID uint, friendCode string) (AddFriendResult, error) {
	var res AddFriendResult
	err := s.unit(ctx, func(tx *gorm.DB) error {
		var friend models.User
		err := tx.Where("friend_code = ?", friendCode).First(&friend).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Friend code not found")
		}
		if err != nil {
			return err
		}
		if friend.ID == userID {
			return invalid("Cannot add yourself")
		}

		var existing int64
		err = tx.Model(&models.Friendship{}).
			Where("user_id = ? AND friend_id = ?", userID, friend.ID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			res = AddFriendResult{Status: FriendAlready}
			return nil
		}

		if err := tx.Create(&models.Friendship{UserID: userID, FriendID: friend.ID}).Error; err != nil {
			return err
		}
		res = AddFriendResult{Status: FriendAdded, FriendName: friend.FullName}
		return nil
	})
	if err != nil {
		return AddFriendResult{}, err
	}
	return res, nil
}

// FriendIDs returns the targets of userID's outgoing friendship edges.
func FriendIDs(tx *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&models.Friendship{}).Where("user_id = ?", userID).Order("friend_id").Pluck("friend_id", &ids).Error
	return ids, err
}

// Leaderboard scores the caller and everyone the caller has added on this
// month's completion rate so far.
func (s *Service) Leaderboard(ctx context.Context, userID uint) ([]stats.Standing, error) {
	today := s.today()
	month := stats.MonthOf(today)

	standings := []stats.Standing{}
	err := s.unit(ctx, func(tx *gorm.DB) error {
		ids, err := FriendIDs(tx, userID)
		if err != nil {
			return err
		}
		ids = append(ids, userID)

		var users []models.User
		if err := tx.Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
			return err
		}

		for _, u := range users {
			var habitIDs []uint
			if err := tx.Model(&models.Habit{}).Where("user_id = ?", u.ID).Pluck("id", &habitIDs).Error; err != nil {
				return err
			}

			var logs int64
			if len(habitIDs) > 0 {
				err := tx.Model(&models.DailyLog{}).
					Where("habit_id IN ? AND date >= ?", habitIDs, month.First()).
					Count(&logs).Error
				if err != nil {
					return err
				}
			}

			standings = append(standings, stats.Standing{
				UserID:         u.ID,
				Username:       u.Username,
				FullName:       u.FullName,
				ProfilePicture: u.ProfilePicture,
				Score:          stats.Score(int(logs), len(habitIDs), today.Day()),
				IsMe:           u.ID == userID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	stats.Rank(standings)
	return standings, nil
}
