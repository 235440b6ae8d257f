package dao

import (
	"Foodgram/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsTaken 用户名或邮箱是否已被占用
func (u *Users) IsTaken(ctx context.Context, username, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ? OR email = ?", username, email)
}

// List 按 id 正序分页
func (u *Users) List(ctx context.Context, limit, offset int) ([]*models.Users, int64, error) {
	var (
		users []*models.Users
		total int64
	)
	if err := u.Db.WithContext(ctx).Model(&models.Users{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := u.Db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, total, err
}

func (u *Users) UpdatePassword(ctx context.Context, userID int64, hashed string) error {
	err := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
	if err != nil {
		return fmt.Errorf("dao.Users.UpdatePassword error: %w", err)
	}
	return nil
}
