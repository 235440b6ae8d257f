package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/encrypt"
	"Foodgram/types"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Authenticate(ctx context.Context, email, password string) (*models.Users, error)
	Get(ctx context.Context, viewerID, userID int64) (*types.User, error)
	List(ctx context.Context, viewerID int64, page *types.PageQuery) (*types.Page[types.User], error)
	SetPassword(ctx context.Context, userID int64, current, next string) error
}

type UserService struct {
	UsersRepo *dao.Users
	FollowDAO *dao.UserFollowDAO
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	taken, err := s.UsersRepo.IsTaken(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}

	hashed := encrypt.HashPassword(req.Password)
	if hashed == "" {
		return nil, errors.New("hash password failed")
	}
	now := time.Now()
	user := &models.Users{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate 邮箱 + 密码登录校验
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.Users, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, viewerID, userID int64) (*types.User, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	subscribed := false
	if viewerID != 0 && viewerID != userID {
		if subscribed, err = s.FollowDAO.IsFollowing(ctx, viewerID, userID); err != nil {
			return nil, err
		}
	}
	view := ToUserView(user, subscribed)
	return &view, nil
}

func (s *UserService) List(ctx context.Context, viewerID int64, page *types.PageQuery) (*types.Page[types.User], error) {
	users, total, err := s.UsersRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.Id)
	}
	following, err := s.FollowDAO.FollowingSet(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	results := make([]types.User, 0, len(users))
	for _, u := range users {
		results = append(results, ToUserView(u, following[u.Id]))
	}
	return types.NewPage(total, results), nil
}

// SetPassword 修改密码，需校验当前密码
func (s *UserService) SetPassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !encrypt.VerifyPassword(user.Password, current) {
		return ErrWrongPassword
	}
	hashed := encrypt.HashPassword(next)
	if hashed == "" {
		return errors.New("hash password failed")
	}
	return s.UsersRepo.UpdatePassword(ctx, userID, hashed)
}

func ToUserView(u *models.Users, subscribed bool) types.User {
	return types.User{
		Email:        u.Email,
		ID:           u.Id,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}
