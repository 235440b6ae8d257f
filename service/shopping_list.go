package service

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/log"
	"Foodgram/pkg/media"
	"Foodgram/pkg/rocketmq"
	"Foodgram/pkg/shoplist"
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

const shopListMime = "application/pdf"

var _ IShoppingListService = (*ShoppingListService)(nil)

type IShoppingListService interface {
	// Export 汇总购物车并生成 PDF，返回文件内容
	Export(ctx context.Context, userID int64) ([]byte, error)
}

type userFinder interface {
	FindById(ctx context.Context, id any) (*models.Users, error)
}

type shopListSource interface {
	ShopListRows(ctx context.Context, userID int64) ([]models.RecipeIngredientRow, error)
}

type shopListStore interface {
	ShopListPath(username string) (string, error)
	WriteAtomic(path string, fn func(w io.Writer) error) error
	Read(path string) ([]byte, error)
}

type ShoppingListService struct {
	users     userFinder
	source    shopListSource
	store     shopListStore
	oss       IOssService
	publisher rocketmq.Publisher
	conf      *config.ShopList
	// 同一用户的导出串行执行，无人持有或等待时从表中移除
	locks cmap.ConcurrentMap[string, *userLock]
}

// userLock refs 只在 cmap 分片锁内读写
type userLock struct {
	sync.Mutex
	refs int
}

func NewShoppingListService(
	cfg *config.Config,
	users *dao.Users,
	userRecipes *dao.UserRecipeDAO,
	store *media.Store,
	oss IOssService,
	publisher rocketmq.Publisher,
) *ShoppingListService {
	return newShoppingListService(cfg.ShopList, users, userRecipes, store, oss, publisher)
}

func newShoppingListService(
	conf *config.ShopList,
	users userFinder,
	source shopListSource,
	store shopListStore,
	oss IOssService,
	publisher rocketmq.Publisher,
) *ShoppingListService {
	if publisher == nil {
		publisher = rocketmq.Noop{}
	}
	return &ShoppingListService{
		users:     users,
		source:    source,
		store:     store,
		oss:       oss,
		publisher: publisher,
		conf:      conf,
		locks:     cmap.New[*userLock](),
	}
}

func (s *ShoppingListService) Export(ctx context.Context, userID int64) ([]byte, error) {
	user, err := s.users.FindById(ctx, userID)
	if err != nil {
		log.L.Error("shop list export: load user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, ErrExportFailed
	}
	logger := log.L.With(zap.Int64("user_id", user.Id), zap.String("username", user.Username))

	path, err := s.store.ShopListPath(user.Username)
	if err != nil {
		logger.Error("shop list export: resolve path", zap.Error(err))
		return nil, ErrExportFailed
	}
	logger = logger.With(zap.String("path", path))

	data, err := s.exportLocked(ctx, user, path, logger)
	if err != nil {
		logger.Error("shop list export failed", zap.Error(err))
		return nil, ErrExportFailed
	}

	if s.conf.MirrorToOss && s.oss != nil {
		key := fmt.Sprintf("shop_list/%s/output.pdf", user.Username)
		if err := s.oss.UploadReader(ctx, bytes.NewReader(data), key, shopListMime); err != nil {
			logger.Warn("shop list mirror to oss", zap.String("key", key), zap.Error(err))
		}
	}
	ev := rocketmq.Event{Type: rocketmq.EventShopListExported, UserID: user.Id}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logger.Warn("publish shop list event", zap.Error(err))
	}
	return data, nil
}

// exportLocked 聚合、渲染、回读在同一把用户锁内完成，回读内容即本次写入的文件
func (s *ShoppingListService) exportLocked(ctx context.Context, user *models.Users, path string, logger *zap.Logger) ([]byte, error) {
	unlock := s.lock(user.Username)
	defer unlock()

	rows, err := s.source.ShopListRows(ctx, user.Id)
	if err != nil {
		return nil, fmt.Errorf("load shop list rows: %w", err)
	}
	recipes, err := groupRows(rows)
	if err != nil {
		return nil, err
	}

	list := shoplist.Aggregate(recipes, shoplist.WithMergeKey(s.mergeKey()))
	for _, c := range list.Conflicts() {
		logger.Warn("shop list unit mismatch",
			zap.String("ingredient", c.Name),
			zap.String("kept", c.Kept),
			zap.String("dropped", c.Dropped),
		)
	}

	opts := shoplist.RenderOptions{FontPath: s.conf.FontPath, FontSize: s.conf.FontSize}
	err = s.store.WriteAtomic(path, func(w io.Writer) error {
		return shoplist.Render(w, list, opts)
	})
	if err != nil {
		return nil, err
	}
	return s.store.Read(path)
}

// lock 获取用户锁，返回释放函数
func (s *ShoppingListService) lock(username string) func() {
	l := s.locks.Upsert(username, nil, func(exist bool, inMap, _ *userLock) *userLock {
		if exist {
			inMap.refs++
			return inMap
		}
		return &userLock{refs: 1}
	})
	l.Lock()
	return func() {
		l.Unlock()
		s.locks.RemoveCb(username, func(_ string, v *userLock, exists bool) bool {
			if !exists {
				return false
			}
			v.refs--
			return v.refs == 0
		})
	}
}

func (s *ShoppingListService) mergeKey() shoplist.MergeKey {
	if s.conf.MergeKey == config.MergeKeyNameUnit {
		return shoplist.KeyByNameAndUnit
	}
	return shoplist.KeyByName
}

// groupRows 连续的同一 recipe_id 行归为一个菜谱，保持查询顺序
func groupRows(rows []models.RecipeIngredientRow) ([]shoplist.Recipe, error) {
	var recipes []shoplist.Recipe
	for _, row := range rows {
		if row.IngredientID == nil {
			return nil, fmt.Errorf("recipe %d references a missing ingredient at position %d", row.RecipeID, row.Position)
		}
		if n := len(recipes); n == 0 || recipes[n-1].ID != row.RecipeID {
			recipes = append(recipes, shoplist.Recipe{ID: row.RecipeID})
		}
		last := &recipes[len(recipes)-1]
		last.Ingredients = append(last.Ingredients, shoplist.Entry{
			Name:   row.Name,
			Unit:   row.MeasurementUnit,
			Amount: row.Amount,
		})
	}
	return recipes, nil
}
