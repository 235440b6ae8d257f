package dao

import (
	"Foodgram/models"
	"context"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// RecipeFilter 列表过滤条件，UserID 为 0 时忽略收藏/购物车条件
type RecipeFilter struct {
	AuthorID   int64
	TagSlugs   []string
	UserID     int64
	OnlyWished bool
	OnlyInCart bool
	Limit      int
	Offset     int
}

func (d *RecipeDAO) filtered(ctx context.Context, f *RecipeFilter) *gorm.DB {
	db := d.Db.WithContext(ctx)
	q := db.Model(&models.Recipe{})
	if f.AuthorID > 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.UserID > 0 {
		if f.OnlyWished {
			q = q.Where("id IN (?)", d.userRecipeIDs(db, f.UserID, models.KindWishList))
		}
		if f.OnlyInCart {
			q = q.Where("id IN (?)", d.userRecipeIDs(db, f.UserID, models.KindShopList))
		}
	}
	// 多个标签取交集
	for _, slug := range f.TagSlugs {
		sub := db.Table("recipe_tags rt").
			Select("rt.recipe_id").
			Joins("JOIN tags t ON t.id = rt.tag_id").
			Where("t.slug = ?", slug)
		q = q.Where("id IN (?)", sub)
	}
	return q
}

func (d *RecipeDAO) userRecipeIDs(db *gorm.DB, userID int64, kind uint8) *gorm.DB {
	return db.Model(&models.UserRecipe{}).
		Select("recipe_id").
		Where("user_id = ? AND kind = ? AND status = 1", userID, kind)
}

// List 按创建时间倒序分页
func (d *RecipeDAO) List(ctx context.Context, f *RecipeFilter) ([]*models.Recipe, int64, error) {
	var total int64
	if err := d.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var recipes []*models.Recipe
	err := d.filtered(ctx, f).
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&recipes).Error
	return recipes, total, err
}

// ListByAuthor 作者的菜谱，limit <= 0 时不限制
func (d *RecipeDAO) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	q := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recipes).Error
	return recipes, err
}

func (d *RecipeDAO) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return d.QueryCount(ctx, "author_id = ?", authorID)
}

// CreateWithRelations 菜谱、食材用量、标签在同一事务中写入
func (d *RecipeDAO) CreateWithRelations(ctx context.Context, recipe *models.Recipe, items []models.RecipeIngredient, tagIDs []int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return replaceRelations(tx, recipe.ID, items, tagIDs)
	})
}

// UpdateWithRelations 更新字段并整体替换食材用量与标签
func (d *RecipeDAO) UpdateWithRelations(ctx context.Context, recipeID int64, fields map[string]any, items []models.RecipeIngredient, tagIDs []int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(fields).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		return replaceRelations(tx, recipeID, items, tagIDs)
	})
}

func replaceRelations(tx *gorm.DB, recipeID int64, items []models.RecipeIngredient, tagIDs []int64) error {
	if len(items) > 0 {
		for i := range items {
			items[i].ID = 0
			items[i].RecipeID = recipeID
			items[i].Position = i
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
	}
	if len(tagIDs) > 0 {
		tags := make([]models.RecipeTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			tags = append(tags, models.RecipeTag{RecipeID: recipeID, TagID: id})
		}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteCascade 删除菜谱及其食材用量、标签、收藏/购物车关系
func (d *RecipeDAO) DeleteCascade(ctx context.Context, recipeID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RecipeIngredient{}, &models.RecipeTag{}, &models.UserRecipe{}} {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Recipe{}, recipeID).Error
	})
}

// IngredientRows 批量加载菜谱的食材用量，按菜谱、录入顺序排列
func (d *RecipeDAO) IngredientRows(ctx context.Context, recipeIDs []int64) ([]models.RecipeIngredientRow, error) {
	var rows []models.RecipeIngredientRow
	if len(recipeIDs) == 0 {
		return rows, nil
	}
	err := d.Db.WithContext(ctx).
		Table("recipe_ingredients ri").
		Select("ri.recipe_id, i.id AS ingredient_id, i.name, i.measurement_unit, ri.amount, ri.position").
		Joins("LEFT JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN ?", recipeIDs).
		Order("ri.recipe_id, ri.position").
		Scan(&rows).Error
	return rows, err
}

type recipeTagRow struct {
	RecipeID int64  `gorm:"column:recipe_id"`
	ID       int64  `gorm:"column:id"`
	Name     string `gorm:"column:name"`
	Slug     string `gorm:"column:slug"`
	Color    string `gorm:"column:color"`
}

// TagsByRecipe recipe_id -> tags
func (d *RecipeDAO) TagsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.Tag, error) {
	res := make(map[int64][]models.Tag, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return res, nil
	}
	var rows []recipeTagRow
	err := d.Db.WithContext(ctx).
		Table("recipe_tags rt").
		Select("rt.recipe_id, t.id, t.name, t.slug, t.color").
		Joins("JOIN tags t ON t.id = rt.tag_id").
		Where("rt.recipe_id IN ?", recipeIDs).
		Order("t.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		res[r.RecipeID] = append(res[r.RecipeID], models.Tag{ID: r.ID, Name: r.Name, Slug: r.Slug, Color: r.Color})
	}
	return res, nil
}
