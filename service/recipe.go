package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/log"
	"Foodgram/types"
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	List(ctx context.Context, viewerID int64, q *types.RecipeListQuery) (*types.Page[types.Recipe], error)
	Get(ctx context.Context, viewerID, recipeID int64) (*types.Recipe, error)
	Create(ctx context.Context, authorID int64, req *types.CreateRecipeRequest) (*types.Recipe, error)
	Update(ctx context.Context, userID, recipeID int64, req *types.UpdateRecipeRequest) (*types.Recipe, error)
	Delete(ctx context.Context, userID, recipeID int64) error
}

type RecipeService struct {
	RecipeDAO     *dao.RecipeDAO
	UserDAO       *dao.Users
	FollowDAO     *dao.UserFollowDAO
	UserRecipeDAO *dao.UserRecipeDAO
	TagDAO        *dao.TagDAO
	IngredientDAO *dao.IngredientDAO
	OssService    IOssService
}

func (s *RecipeService) List(ctx context.Context, viewerID int64, q *types.RecipeListQuery) (*types.Page[types.Recipe], error) {
	filter := &dao.RecipeFilter{
		AuthorID:   q.Author,
		TagSlugs:   q.Tags,
		UserID:     viewerID,
		OnlyWished: q.IsFavorited,
		OnlyInCart: q.IsInShoppingCart,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	}
	recipes, total, err := s.RecipeDAO.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, viewerID, recipes)
	if err != nil {
		return nil, err
	}
	return types.NewPage(total, views), nil
}

func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID int64) (*types.Recipe, error) {
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, viewerID, []*models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create 创建菜谱，图片先上传 OSS 再写库
func (s *RecipeService) Create(ctx context.Context, authorID int64, req *types.CreateRecipeRequest) (*types.Recipe, error) {
	items, err := s.checkRelations(ctx, req.Ingredients, req.Tags)
	if err != nil {
		return nil, err
	}
	key, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       key,
		CookingTime: req.CookingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.RecipeDAO.CreateWithRelations(ctx, recipe, items, req.Tags); err != nil {
		s.removeImage(ctx, key)
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return s.Get(ctx, authorID, recipe.ID)
}

// Update 仅作者可修改，食材和标签整体替换，未传图片时保留原图
func (s *RecipeService) Update(ctx context.Context, userID, recipeID int64, req *types.UpdateRecipeRequest) (*types.Recipe, error) {
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrForbidden
	}
	items, err := s.checkRelations(ctx, req.Ingredients, req.Tags)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name":         req.Name,
		"text":         req.Text,
		"cooking_time": req.CookingTime,
		"updated_at":   time.Now(),
	}
	var newKey string
	if req.Image != "" {
		if newKey, err = s.uploadImage(ctx, req.Image); err != nil {
			return nil, err
		}
		fields["image"] = newKey
	}
	if err := s.RecipeDAO.UpdateWithRelations(ctx, recipeID, fields, items, req.Tags); err != nil {
		s.removeImage(ctx, newKey)
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if newKey != "" {
		s.removeImage(ctx, recipe.Image)
	}
	return s.Get(ctx, userID, recipeID)
}

func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return ErrForbidden
	}
	if err := s.RecipeDAO.DeleteCascade(ctx, recipeID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	s.removeImage(ctx, recipe.Image)
	return nil
}

func (s *RecipeService) find(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// checkRelations 校验食材、标签均存在且不重复
func (s *RecipeService) checkRelations(ctx context.Context, ingredients []types.IngredientAmount, tagIDs []int64) ([]models.RecipeIngredient, error) {
	ingredientIDs := make([]int64, 0, len(ingredients))
	items := make([]models.RecipeIngredient, 0, len(ingredients))
	seen := make(map[int64]struct{}, len(ingredients))
	for _, in := range ingredients {
		if _, ok := seen[in.ID]; ok {
			return nil, ErrDuplicateItem
		}
		seen[in.ID] = struct{}{}
		ingredientIDs = append(ingredientIDs, in.ID)
		items = append(items, models.RecipeIngredient{IngredientID: in.ID, Amount: in.Amount})
	}
	tagSeen := make(map[int64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := tagSeen[id]; ok {
			return nil, ErrDuplicateItem
		}
		tagSeen[id] = struct{}{}
	}

	n, err := s.IngredientDAO.CountByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	if n != int64(len(ingredientIDs)) {
		return nil, ErrUnknownIngredient
	}
	n, err = s.TagDAO.CountByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if n != int64(len(tagIDs)) {
		return nil, ErrUnknownTag
	}
	return items, nil
}

func (s *RecipeService) uploadImage(ctx context.Context, raw string) (string, error) {
	img, err := DecodeImage(raw)
	if err != nil {
		return "", err
	}
	key := img.ObjectKey(time.Now())
	if err := s.OssService.UploadReader(ctx, bytes.NewReader(img.Data), key, img.ContentType); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return key, nil
}

func (s *RecipeService) removeImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.OssService.Delete(ctx, key); err != nil {
		log.L.Warn("delete recipe image", zap.String("key", key), zap.Error(err))
	}
}

// views 批量组装详情，避免逐条查询
func (s *RecipeService) views(ctx context.Context, viewerID int64, recipes []*models.Recipe) ([]types.Recipe, error) {
	if len(recipes) == 0 {
		return nil, nil
	}
	recipeIDs := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	authors, err := s.UserDAO.FindByIds(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorByID := make(map[int64]*models.Users, len(authors))
	for _, a := range authors {
		authorByID[a.Id] = a
	}
	following, err := s.FollowDAO.FollowingSet(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}
	rows, err := s.RecipeDAO.IngredientRows(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	ingredients := make(map[int64][]types.RecipeIngredient, len(recipes))
	for _, row := range rows {
		if row.IngredientID == nil {
			continue
		}
		ingredients[row.RecipeID] = append(ingredients[row.RecipeID], types.RecipeIngredient{
			ID:              *row.IngredientID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}
	tags, err := s.RecipeDAO.TagsByRecipe(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	favorited, err := s.UserRecipeDAO.MarkedSet(ctx, models.KindWishList, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := s.UserRecipeDAO.MarkedSet(ctx, models.KindShopList, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}

	views := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		var author types.User
		if a, ok := authorByID[r.AuthorID]; ok {
			author = ToUserView(a, following[a.Id])
		}
		tagViews := make([]types.Tag, 0, len(tags[r.ID]))
		for i := range tags[r.ID] {
			tagViews = append(tagViews, toTagView(&tags[r.ID][i]))
		}
		items := ingredients[r.ID]
		if items == nil {
			items = make([]types.RecipeIngredient, 0)
		}
		views = append(views, types.Recipe{
			ID:               r.ID,
			Tags:             tagViews,
			Author:           author,
			Ingredients:      items,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            s.OssService.URL(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		})
	}
	return views, nil
}

func toRecipeShort(r *models.Recipe, oss IOssService) types.RecipeShort {
	return types.RecipeShort{
		ID:          r.ID,
		Name:        r.Name,
		Image:       oss.URL(r.Image),
		CookingTime: r.CookingTime,
	}
}
