package models

import "time"

// Friendship is a one-directional edge: UserID added FriendID. The pair
// is unique so adding the same friend twice is rejected at the store.
type Friendship struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	UserID    uint32    `gorm:"uniqueIndex:unique_user_friend;not null" json:"user_id"`
	FriendID  uint32    `gorm:"uniqueIndex:unique_user_friend;not null" json:"friend_id"`
	Friend    User      `gorm:"foreignKey:FriendID" json:"friend"`
	CreatedAt time.Time `json:"created_at"`
}

func (Friendship) TableName() string {
	return "dreamteam_friendship"
}
