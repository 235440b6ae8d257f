package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"context"
)

// 服务依赖的最小存储接口，由 dao 实现

type FollowStore interface {
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	SetStatus(ctx context.Context, followerID, followingID int64, status int) error
	ListFollowingIDs(ctx context.Context, followerID int64, limit, offset int) ([]int64, int64, error)
}

type AuthorStore interface {
	FindById(ctx context.Context, id any) (*models.Users, error)
	FindByIds(ctx context.Context, ids any) ([]*models.Users, error)
	IsExist(ctx context.Context, where string, args ...any) (bool, error)
}

// AuthorRecipes 作者菜谱预览
type AuthorRecipes interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]*models.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type RecipeFinder interface {
	FindById(ctx context.Context, id any) (*models.Recipe, error)
	IsExist(ctx context.Context, where string, args ...any) (bool, error)
}

// RecipeMarks 收藏/购物车标记
type RecipeMarks interface {
	IsMarked(ctx context.Context, kind uint8, userID, recipeID int64) (bool, error)
	SetStatus(ctx context.Context, kind uint8, userID, recipeID int64, status uint8) error
}

var (
	_ FollowStore   = (*dao.UserFollowDAO)(nil)
	_ AuthorStore   = (*dao.Users)(nil)
	_ AuthorRecipes = (*dao.RecipeDAO)(nil)
	_ RecipeFinder  = (*dao.RecipeDAO)(nil)
	_ RecipeMarks   = (*dao.UserRecipeDAO)(nil)
)
