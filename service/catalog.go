package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/validate"
	"Foodgram/types"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const defaultTagColor = "#ffffff"

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	Tags(ctx context.Context) ([]types.Tag, error)
	Tag(ctx context.Context, id int64) (*types.Tag, error)
	Ingredients(ctx context.Context, name string) ([]types.Ingredient, error)
	Ingredient(ctx context.Context, id int64) (*types.Ingredient, error)
	Import(ctx context.Context, tags []types.TagSeed, ingredients []types.IngredientSeed) (*ImportResult, error)
}

type CatalogService struct {
	TagDAO        *dao.TagDAO
	IngredientDAO *dao.IngredientDAO
}

func (s *CatalogService) Tags(ctx context.Context) ([]types.Tag, error) {
	tags, err := s.TagDAO.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagView(t))
	}
	return out, nil
}

func (s *CatalogService) Tag(ctx context.Context, id int64) (*types.Tag, error) {
	tag, err := s.TagDAO.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	view := toTagView(tag)
	return &view, nil
}

// Ingredients 名称前缀搜索
func (s *CatalogService) Ingredients(ctx context.Context, name string) ([]types.Ingredient, error) {
	items, err := s.IngredientDAO.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]types.Ingredient, 0, len(items))
	for _, i := range items {
		out = append(out, types.Ingredient{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit})
	}
	return out, nil
}

func (s *CatalogService) Ingredient(ctx context.Context, id int64) (*types.Ingredient, error) {
	item, err := s.IngredientDAO.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &types.Ingredient{ID: item.ID, Name: item.Name, MeasurementUnit: item.MeasurementUnit}, nil
}

func toTagView(t *models.Tag) types.Tag {
	return types.Tag{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

type ImportResult struct {
	Tags        int
	Ingredients int
}

// Import 导入标签与食材字典，全部校验通过后才写库
func (s *CatalogService) Import(ctx context.Context, tags []types.TagSeed, ingredients []types.IngredientSeed) (*ImportResult, error) {
	tagRows := make([]models.Tag, 0, len(tags))
	for i, t := range tags {
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("tag #%d: %w", i, err)
		}
		color := t.Color
		if color == "" {
			color = defaultTagColor
		}
		tagRows = append(tagRows, models.Tag{Name: t.Name, Slug: t.Slug, Color: color})
	}
	ingredientRows := make([]models.Ingredient, 0, len(ingredients))
	for i, in := range ingredients {
		if err := validate.Struct(in); err != nil {
			return nil, fmt.Errorf("ingredient #%d: %w", i, err)
		}
		ingredientRows = append(ingredientRows, models.Ingredient{Name: in.Name, MeasurementUnit: in.MeasurementUnit})
	}

	if err := s.TagDAO.UpsertBySlug(ctx, tagRows); err != nil {
		return nil, fmt.Errorf("import tags: %w", err)
	}
	created, err := s.IngredientDAO.CreateMissing(ctx, ingredientRows)
	if err != nil {
		return nil, fmt.Errorf("import ingredients: %w", err)
	}
	return &ImportResult{Tags: len(tagRows), Ingredients: created}, nil
}
