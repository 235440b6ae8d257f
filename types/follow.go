package types

type SubscriptionsQuery struct {
	PageQuery
	RecipesLimit int `form:"recipes_limit" binding:"omitempty,min=0"`
}

// Subscription 订阅的作者及其菜谱
type Subscription struct {
	User
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}
