package service

import (
	"Foodgram/models"
	"Foodgram/pkg/rocketmq"
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"
)

type fakeRecipes map[int64]*models.Recipe

func (f fakeRecipes) FindById(_ context.Context, id any) (*models.Recipe, error) {
	r, ok := f[id.(int64)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f fakeRecipes) IsExist(_ context.Context, _ string, args ...any) (bool, error) {
	_, ok := f[args[0].(int64)]
	return ok, nil
}

type markKey struct {
	kind             uint8
	userID, recipeID int64
}

type fakeMarks struct {
	mu     sync.Mutex
	status map[markKey]uint8
}

func (f *fakeMarks) IsMarked(_ context.Context, kind uint8, userID, recipeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status[markKey{kind, userID, recipeID}] == 1, nil
}

func (f *fakeMarks) SetStatus(_ context.Context, kind uint8, userID, recipeID int64, status uint8) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status[markKey{kind, userID, recipeID}] = status
	return nil
}

func newTestCollectService() (*CollectService, *fakeMarks, *fakePublisher) {
	marks := &fakeMarks{status: make(map[markKey]uint8)}
	pub := &fakePublisher{}
	return &CollectService{
		UserRecipeDAO: marks,
		RecipeDAO: fakeRecipes{
			7: {ID: 7, AuthorID: 2, Name: "Блины", Image: "recipe/2024/01/01/a.png", CookingTime: 30},
		},
		OssService: &fakeOss{},
		Publisher:  pub,
	}, marks, pub
}

func TestCollect(t *testing.T) {
	type op func(s *CollectService) error
	favorite := func(s *CollectService) error {
		_, err := s.Favorite(context.Background(), 1, 7)
		return err
	}
	addCart := func(s *CollectService) error {
		_, err := s.AddToCart(context.Background(), 1, 7)
		return err
	}
	unfavorite := func(s *CollectService) error { return s.Unfavorite(context.Background(), 1, 7) }
	removeCart := func(s *CollectService) error { return s.RemoveFromCart(context.Background(), 1, 7) }

	tests := []struct {
		name       string
		ops        []op
		wantErr    error
		wantEvents []string
	}{
		{name: "favorite", ops: []op{favorite}, wantEvents: []string{rocketmq.EventFavorited}},
		{name: "favorite twice", ops: []op{favorite, favorite}, wantErr: ErrAlreadyFavorited, wantEvents: []string{rocketmq.EventFavorited}},
		{name: "unfavorite missing", ops: []op{unfavorite}, wantErr: ErrNotFavorited},
		{name: "favorite then unfavorite", ops: []op{favorite, unfavorite}, wantEvents: []string{rocketmq.EventFavorited, rocketmq.EventUnfavorited}},
		{name: "cart", ops: []op{addCart}, wantEvents: []string{rocketmq.EventCartAdded}},
		{name: "cart twice", ops: []op{addCart, addCart}, wantErr: ErrAlreadyInCart, wantEvents: []string{rocketmq.EventCartAdded}},
		{name: "remove missing", ops: []op{removeCart}, wantErr: ErrNotInCart},
		{name: "add remove add", ops: []op{addCart, removeCart, addCart}, wantEvents: []string{rocketmq.EventCartAdded, rocketmq.EventCartRemoved, rocketmq.EventCartAdded}},
		// 收藏与购物车互不影响
		{name: "favorite does not fill cart", ops: []op{favorite, removeCart}, wantErr: ErrNotInCart, wantEvents: []string{rocketmq.EventFavorited}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, pub := newTestCollectService()
			var err error
			for _, o := range tt.ops {
				if err = o(svc); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			got := pub.eventTypes()
			if len(got) != len(tt.wantEvents) {
				t.Fatalf("events = %v, want %v", got, tt.wantEvents)
			}
			for i := range got {
				if got[i] != tt.wantEvents[i] {
					t.Fatalf("events = %v, want %v", got, tt.wantEvents)
				}
			}
		})
	}
}

func TestCollect_UnknownRecipe(t *testing.T) {
	svc, _, _ := newTestCollectService()
	ctx := context.Background()

	if _, err := svc.Favorite(ctx, 1, 404); !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Favorite err = %v", err)
	}
	if err := svc.Unfavorite(ctx, 1, 404); !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Unfavorite err = %v", err)
	}
	if _, err := svc.AddToCart(ctx, 1, 404); !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("AddToCart err = %v", err)
	}
	if err := svc.RemoveFromCart(ctx, 1, 404); !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("RemoveFromCart err = %v", err)
	}
}

func TestCollect_ReturnsShortRecipe(t *testing.T) {
	svc, marks, _ := newTestCollectService()

	short, err := svc.AddToCart(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if short.ID != 7 || short.Name != "Блины" || short.CookingTime != 30 {
		t.Fatalf("short = %+v", short)
	}
	if short.Image != "https://cdn.example.com/recipe/2024/01/01/a.png" {
		t.Fatalf("image = %q", short.Image)
	}
	if ok, _ := marks.IsMarked(context.Background(), models.KindShopList, 1, 7); !ok {
		t.Fatalf("cart mark not stored")
	}
	if ok, _ := marks.IsMarked(context.Background(), models.KindWishList, 1, 7); ok {
		t.Fatalf("wish list should be untouched")
	}
}
