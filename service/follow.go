package service

import (
	"Foodgram/models"
	"Foodgram/pkg/log"
	"Foodgram/pkg/rocketmq"
	"Foodgram/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const subscriptionWorkers = 8

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*types.Subscription, error)
	Unsubscribe(ctx context.Context, followerID, authorID int64) error
	Subscriptions(ctx context.Context, followerID int64, q *types.SubscriptionsQuery) (*types.Page[types.Subscription], error)
}

type FollowService struct {
	FollowDAO  FollowStore
	UserDAO    AuthorStore
	RecipeDAO  AuthorRecipes
	OssService IOssService
	Publisher  rocketmq.Publisher
}

// Subscribe 订阅作者
func (s *FollowService) Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*types.Subscription, error) {
	author, err := s.UserDAO.FindById(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if followerID == authorID {
		return nil, ErrSelfSubscribe
	}

	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	if isFollowing {
		return nil, ErrAlreadySubscribed
	}
	if err := s.FollowDAO.SetStatus(ctx, followerID, authorID, models.FollowStatusActive); err != nil {
		return nil, err
	}
	s.publish(ctx, rocketmq.EventFollowed, followerID, authorID)

	return s.subscription(ctx, author, recipesLimit)
}

// Unsubscribe 取消订阅
func (s *FollowService) Unsubscribe(ctx context.Context, followerID, authorID int64) error {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", authorID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrUserNotFound
	}

	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if !isFollowing {
		return ErrNotSubscribed
	}
	if err := s.FollowDAO.SetStatus(ctx, followerID, authorID, models.FollowStatusCancelled); err != nil {
		return err
	}
	s.publish(ctx, rocketmq.EventUnfollowed, followerID, authorID)
	return nil
}

// Subscriptions 订阅列表，每个作者的菜谱并发加载
func (s *FollowService) Subscriptions(ctx context.Context, followerID int64, q *types.SubscriptionsQuery) (*types.Page[types.Subscription], error) {
	ids, total, err := s.FollowDAO.ListFollowingIDs(ctx, followerID, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return types.NewPage[types.Subscription](total, nil), nil
	}

	authors, err := s.UserDAO.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.Users, len(authors))
	for _, a := range authors {
		byID[a.Id] = a
	}

	results := make([]types.Subscription, len(ids))
	p := pool.New().WithMaxGoroutines(subscriptionWorkers).WithContext(ctx).WithCancelOnError()
	for i, id := range ids {
		author, ok := byID[id]
		if !ok {
			continue
		}
		p.Go(func(ctx context.Context) error {
			sub, err := s.subscription(ctx, author, q.RecipesLimit)
			if err != nil {
				return err
			}
			results[i] = *sub
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	// 作者已被删除时跳过
	out := results[:0]
	for _, r := range results {
		if r.ID != 0 {
			out = append(out, r)
		}
	}
	return types.NewPage(total, out), nil
}

func (s *FollowService) subscription(ctx context.Context, author *models.Users, recipesLimit int) (*types.Subscription, error) {
	recipes, err := s.RecipeDAO.ListByAuthor(ctx, author.Id, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.RecipeDAO.CountByAuthor(ctx, author.Id)
	if err != nil {
		return nil, err
	}
	shorts := make([]types.RecipeShort, 0, len(recipes))
	for _, r := range recipes {
		shorts = append(shorts, toRecipeShort(r, s.OssService))
	}
	return &types.Subscription{
		User:         ToUserView(author, true),
		Recipes:      shorts,
		RecipesCount: count,
	}, nil
}

func (s *FollowService) publish(ctx context.Context, typ string, userID, targetID int64) {
	if err := s.Publisher.Publish(ctx, rocketmq.Event{Type: typ, UserID: userID, TargetID: targetID}); err != nil {
		log.L.Warn("publish follow event", zap.String("type", typ), zap.Int64("user_id", userID), zap.Error(err))
	}
}
