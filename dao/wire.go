package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserFollowDAO,
	NewTagDAO,
	NewIngredientDAO,
	NewRecipeDAO,
	NewUserRecipeDAO,
)
