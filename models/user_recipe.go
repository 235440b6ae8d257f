package models

import "time"

// UserRecipe 用户与菜谱的关系，心愿单和购物车共用一张表
// status: 1=有效，0=已取消
// 唯一键: user_id + recipe_id + kind
type UserRecipe struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_recipe_kind,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:uk_user_recipe_kind,priority:2;index:idx_recipe" json:"recipe_id"`
	Kind      uint8     `gorm:"column:kind;not null;uniqueIndex:uk_user_recipe_kind,priority:3" json:"kind"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserRecipe) TableName() string { return "user_recipes" }

const (
	KindWishList uint8 = 1 // 收藏
	KindShopList uint8 = 2 // 购物车
)
