package dao

import (
	"Foodgram/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRecipeDAO struct {
	Repo[models.UserRecipe]
}

func NewUserRecipeDAO(db *gorm.DB) *UserRecipeDAO {
	return &UserRecipeDAO{Repo: NewRepo[models.UserRecipe](db)}
}

// SetStatus 设置收藏/购物车状态，不存在则创建
func (d *UserRecipeDAO) SetStatus(ctx context.Context, kind uint8, userID, recipeID int64, status uint8) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.UserRecipe
		err := tx.Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			return err
		}
		if item.ID == 0 {
			item = models.UserRecipe{UserID: userID, RecipeID: recipeID, Kind: kind, Status: status}
			return tx.Create(&item).Error
		}
		return tx.Model(&models.UserRecipe{}).Where("id = ?", item.ID).Update("status", status).Error
	})
}

// IsMarked 是否有效（status=1）
func (d *UserRecipeDAO) IsMarked(ctx context.Context, kind uint8, userID, recipeID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ? AND kind = ? AND status = 1", userID, recipeID, kind)
}

// MarkedSet 批量判断，返回 recipe_id -> true
func (d *UserRecipeDAO) MarkedSet(ctx context.Context, kind uint8, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	set := make(map[int64]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return set, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserRecipe{}).
		Where("user_id = ? AND kind = ? AND status = 1 AND recipe_id IN ?", userID, kind, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ShopListRows 用户购物车内所有菜谱的食材用量。
// 菜谱按创建时间倒序，同一菜谱内按录入顺序；食材记录缺失时 IngredientID 为空。
func (d *UserRecipeDAO) ShopListRows(ctx context.Context, userID int64) ([]models.RecipeIngredientRow, error) {
	var rows []models.RecipeIngredientRow
	err := d.Db.WithContext(ctx).
		Table("user_recipes ur").
		Select("ri.recipe_id, i.id AS ingredient_id, i.name, i.measurement_unit, ri.amount, ri.position").
		Joins("JOIN recipes r ON r.id = ur.recipe_id").
		Joins("JOIN recipe_ingredients ri ON ri.recipe_id = r.id").
		Joins("LEFT JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ur.user_id = ? AND ur.kind = ? AND ur.status = 1", userID, models.KindShopList).
		Order("r.created_at DESC").
		Order("r.id DESC").
		Order("ri.position ASC").
		Scan(&rows).Error
	return rows, err
}
