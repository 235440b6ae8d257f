package dao

import (
	"Foodgram/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

func (d *TagDAO) All(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&tags).Error
	return tags, err
}

// CountByIDs 用于校验传入的标签是否全部存在
func (d *TagDAO) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return d.QueryCount(ctx, "id IN ?", ids)
}

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

// Search 按名称前缀过滤，name 为空时返回全部
func (d *IngredientDAO) Search(ctx context.Context, name string) ([]*models.Ingredient, error) {
	var items []*models.Ingredient
	q := d.Db.WithContext(ctx).Order("name ASC")
	if name != "" {
		q = q.Where("name LIKE ?", escapeLike(name)+"%")
	}
	err := q.Find(&items).Error
	return items, err
}

func (d *IngredientDAO) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return d.QueryCount(ctx, "id IN ?", ids)
}

// UpsertBySlug 按 slug 新增或更新
func (d *TagDAO) UpsertBySlug(ctx context.Context, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "color"}),
	}).Create(&tags).Error
}

// CreateMissing 按 name + measurement_unit 去重后写入
func (d *IngredientDAO) CreateMissing(ctx context.Context, items []models.Ingredient) (int, error) {
	created := 0
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			var count int64
			err := tx.Model(&models.Ingredient{}).
				Where("name = ? AND measurement_unit = ?", items[i].Name, items[i].MeasurementUnit).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	return created, err
}
