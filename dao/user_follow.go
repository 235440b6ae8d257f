package dao

import (
	"Foodgram/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已订阅
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	var follow models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ? AND status = ?", followerID, followingID, models.FollowStatusActive).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FollowingSet 批量判断 followingIDs 中哪些已被订阅
func (d *UserFollowDAO) FollowingSet(ctx context.Context, followerID int64, followingIDs []int64) (map[int64]bool, error) {
	set := make(map[int64]bool, len(followingIDs))
	if followerID == 0 || len(followingIDs) == 0 {
		return set, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND following_id IN ? AND status = ?", followerID, followingIDs, models.FollowStatusActive).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// SetStatus 设置订阅状态（如不存在则创建）
func (d *UserFollowDAO) SetStatus(ctx context.Context, followerID, followingID int64, status int) error {
	now := time.Now()

	// 优先更新已有记录，避免 OnConflict 未命中导致不更新的情况
	res := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Updates(map[string]any{
			"status":     status,
			"created_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	follow := models.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return d.Db.WithContext(ctx).Create(&follow).Error
}

// ListFollowingIDs 订阅的作者，按订阅时间倒序
func (d *UserFollowDAO) ListFollowingIDs(ctx context.Context, followerID int64, limit, offset int) ([]int64, int64, error) {
	var (
		ids   []int64
		total int64
	)
	q := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND status = ?", followerID, models.FollowStatusActive)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND status = ?", followerID, models.FollowStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("following_id", &ids).Error
	return ids, total, err
}
