package service

import (
	"Foodgram/models"
	"Foodgram/pkg/log"
	"Foodgram/pkg/rocketmq"
	"Foodgram/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ICollectService = (*CollectService)(nil)

// ICollectService 收藏与购物车，两者共用 user_recipes 表，以 kind 区分
type ICollectService interface {
	Favorite(ctx context.Context, userID, recipeID int64) (*types.RecipeShort, error)
	Unfavorite(ctx context.Context, userID, recipeID int64) error
	AddToCart(ctx context.Context, userID, recipeID int64) (*types.RecipeShort, error)
	RemoveFromCart(ctx context.Context, userID, recipeID int64) error
}

type CollectService struct {
	UserRecipeDAO RecipeMarks
	RecipeDAO     RecipeFinder
	OssService    IOssService
	Publisher     rocketmq.Publisher
}

type collectKind struct {
	kind       uint8
	onEvent    string
	offEvent   string
	errPresent error
	errAbsent  error
}

var (
	wishList = collectKind{
		kind:       models.KindWishList,
		onEvent:    rocketmq.EventFavorited,
		offEvent:   rocketmq.EventUnfavorited,
		errPresent: ErrAlreadyFavorited,
		errAbsent:  ErrNotFavorited,
	}
	shopList = collectKind{
		kind:       models.KindShopList,
		onEvent:    rocketmq.EventCartAdded,
		offEvent:   rocketmq.EventCartRemoved,
		errPresent: ErrAlreadyInCart,
		errAbsent:  ErrNotInCart,
	}
)

func (s *CollectService) Favorite(ctx context.Context, userID, recipeID int64) (*types.RecipeShort, error) {
	return s.mark(ctx, wishList, userID, recipeID)
}

func (s *CollectService) Unfavorite(ctx context.Context, userID, recipeID int64) error {
	return s.unmark(ctx, wishList, userID, recipeID)
}

func (s *CollectService) AddToCart(ctx context.Context, userID, recipeID int64) (*types.RecipeShort, error) {
	return s.mark(ctx, shopList, userID, recipeID)
}

func (s *CollectService) RemoveFromCart(ctx context.Context, userID, recipeID int64) error {
	return s.unmark(ctx, shopList, userID, recipeID)
}

func (s *CollectService) mark(ctx context.Context, k collectKind, userID, recipeID int64) (*types.RecipeShort, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	marked, err := s.UserRecipeDAO.IsMarked(ctx, k.kind, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if marked {
		return nil, k.errPresent
	}
	if err := s.UserRecipeDAO.SetStatus(ctx, k.kind, userID, recipeID, 1); err != nil {
		return nil, err
	}
	s.publish(ctx, k.onEvent, userID, recipeID)

	short := toRecipeShort(recipe, s.OssService)
	return &short, nil
}

func (s *CollectService) unmark(ctx context.Context, k collectKind, userID, recipeID int64) error {
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrRecipeNotFound
	}
	marked, err := s.UserRecipeDAO.IsMarked(ctx, k.kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !marked {
		return k.errAbsent
	}
	if err := s.UserRecipeDAO.SetStatus(ctx, k.kind, userID, recipeID, 0); err != nil {
		return err
	}
	s.publish(ctx, k.offEvent, userID, recipeID)
	return nil
}

func (s *CollectService) publish(ctx context.Context, typ string, userID, recipeID int64) {
	if err := s.Publisher.Publish(ctx, rocketmq.Event{Type: typ, UserID: userID, TargetID: recipeID}); err != nil {
		log.L.Warn("publish collect event", zap.String("type", typ), zap.Int64("user_id", userID), zap.Error(err))
	}
}
