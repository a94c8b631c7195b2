package models

// Friendship is a directed edge: UserID added FriendID. The reverse edge is
// never created implicitly.
type Friendship struct {
	UserID   uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FriendID uint `gorm:"primaryKey;autoIncrement:false" json:"friend_id"`

	User   User `gorm:"foreignKey:UserID" json:"-"`
	Friend User `gorm:"foreignKey:FriendID" json:"-"`
}
