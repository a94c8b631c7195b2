package models

import (
	"time"
)

// DefaultUsername is the account every request resolves to until real
// authentication exists.
const DefaultUsername = "default_user"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash   string    `json:"-"` // unused, there is no login flow
	FullName       string    `json:"full_name"`
	Age            *int      `json:"age,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	ProfilePicture *string   `json:"profile_picture"` // URL or base64
	FriendCode     string    `gorm:"uniqueIndex;not null" json:"friend_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Habits []Habit `gorm:"foreignKey:UserID" json:"-"`
}

// UserPublic is the profile shape exposed to clients.
type UserPublic struct {
	Username       string  `json:"username"`
	FullName       string  `json:"full_name"`
	FriendCode     string  `json:"friend_code"`
	ProfilePicture *string `json:"profile_picture"`
}

func (u *User) Public() UserPublic {
	return UserPublic{
		Username:       u.Username,
		FullName:       u.FullName,
		FriendCode:     u.FriendCode,
		ProfilePicture: u.ProfilePicture,
	}
}
