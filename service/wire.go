package service

import (
	"Foodgram/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(FollowStore), new(*dao.UserFollowDAO)),
	wire.Bind(new(AuthorStore), new(*dao.Users)),
	wire.Bind(new(AuthorRecipes), new(*dao.RecipeDAO)),
	wire.Bind(new(RecipeFinder), new(*dao.RecipeDAO)),
	wire.Bind(new(RecipeMarks), new(*dao.UserRecipeDAO)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(TokenService), "*"),
	wire.Bind(new(ITokenService), new(*TokenService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(CollectService), "*"),
	wire.Bind(new(ICollectService), new(*CollectService)),

	NewShoppingListService,
	wire.Bind(new(IShoppingListService), new(*ShoppingListService)),

	NewOssService,
)
