package models

import (
	"time"
)

const (
	FollowStatusCancelled = 0
	FollowStatusActive    = 1
)

type UserFollow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"`   // 订阅人
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2" json:"following_id"` // 作者
	Status      int       `gorm:"column:status;not null;default:1" json:"status"`                                                // 1:订阅中 0:已取消
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_user_follow_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}
