package models

import "time"

type Recipe struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID    int64     `gorm:"column:author_id;not null;index:idx_author" json:"author_id"`
	Name        string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Text        string    `gorm:"column:text;type:text;not null" json:"text"`
	Image       string    `gorm:"column:image;type:varchar(255);not null;default:''" json:"image"` // oss key
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_recipes_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 菜谱中的食材用量，Position 保持录入顺序
type RecipeIngredient struct {
	ID           int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID     int64 `gorm:"column:recipe_id;not null;index:idx_recipe_position,priority:1" json:"recipe_id"`
	IngredientID int64 `gorm:"column:ingredient_id;not null" json:"ingredient_id"`
	Amount       int64 `gorm:"column:amount;not null" json:"amount"`
	Position     int   `gorm:"column:position;not null;index:idx_recipe_position,priority:2" json:"position"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

type RecipeTag struct {
	RecipeID int64 `gorm:"column:recipe_id;primaryKey" json:"recipe_id"`
	TagID    int64 `gorm:"column:tag_id;primaryKey;index:idx_tag" json:"tag_id"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}

// RecipeIngredientRow 菜谱食材联表查询结果，食材已删除时 IngredientID 为空
type RecipeIngredientRow struct {
	RecipeID        int64  `gorm:"column:recipe_id"`
	IngredientID    *int64 `gorm:"column:ingredient_id"`
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int64  `gorm:"column:amount"`
	Position        int    `gorm:"column:position"`
}
