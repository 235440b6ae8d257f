package service

import (
	"Foodgram/config"
	"Foodgram/models"
	"Foodgram/pkg/media"
	"Foodgram/pkg/shoplist"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"
)

type fakeUsers map[int64]*models.Users

func (f fakeUsers) FindById(_ context.Context, id any) (*models.Users, error) {
	u, ok := f[id.(int64)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeSource struct {
	mu   sync.Mutex
	rows map[int64][]models.RecipeIngredientRow
	err  error
}

func (f *fakeSource) ShopListRows(_ context.Context, userID int64) ([]models.RecipeIngredientRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[userID], nil
}

func (f *fakeSource) set(userID int64, rows []models.RecipeIngredientRow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[userID] = rows
}

type fakeOss struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	deleted  []string
	err      error
}

func (f *fakeOss) Upload(context.Context, string, string) error { return nil }

func (f *fakeOss) UploadReader(_ context.Context, r io.Reader, key, _ string) error {
	if f.err != nil {
		return f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploaded == nil {
		f.uploaded = make(map[string][]byte)
	}
	f.uploaded[key] = b
	return nil
}

func (f *fakeOss) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeOss) URL(key string) string { return "https://cdn.example.com/" + key }

func ingredientID(id int64) *int64 { return &id }

func row(recipeID, ingID int64, name, unit string, amount int64, pos int) models.RecipeIngredientRow {
	return models.RecipeIngredientRow{
		RecipeID:        recipeID,
		IngredientID:    ingredientID(ingID),
		Name:            name,
		MeasurementUnit: unit,
		Amount:          amount,
		Position:        pos,
	}
}

func newTestShoppingList(t *testing.T, conf *config.ShopList, oss IOssService) (*ShoppingListService, *fakeSource, *media.Store) {
	t.Helper()
	users := fakeUsers{
		1: {Id: 1, Username: "alice"},
		2: {Id: 2, Username: "bob"},
		3: {Id: 3, Username: "john..doe"},
	}
	source := &fakeSource{rows: make(map[int64][]models.RecipeIngredientRow)}
	store := media.NewStore(t.TempDir())
	if conf == nil {
		conf = &config.ShopList{MergeKey: config.MergeKeyName, FontSize: 12}
	}
	return newShoppingListService(conf, users, source, store, oss, nil), source, store
}

func assertPDF(t *testing.T, b []byte) {
	t.Helper()
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("missing pdf header, got %q", b[:min(len(b), 16)])
	}
	if !bytes.Contains(b[max(0, len(b)-32):], []byte("%%EOF")) {
		t.Fatalf("missing pdf trailer")
	}
}

func TestExport_EmptyShopList(t *testing.T) {
	svc, _, store := newTestShoppingList(t, nil, nil)

	data, err := svc.Export(context.Background(), 1)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	assertPDF(t, data)

	path, _ := store.ShopListPath("alice")
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.Equal(onDisk, data) {
		t.Fatalf("returned bytes differ from file on disk")
	}
}

func TestExport_OverwritesPreviousFile(t *testing.T) {
	svc, source, store := newTestShoppingList(t, nil, nil)

	first, err := svc.Export(context.Background(), 1)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}

	source.set(1, []models.RecipeIngredientRow{
		row(20, 1, "Salt", "g", 5, 0),
		row(20, 2, "Flour", "g", 200, 1),
		row(10, 1, "Salt", "g", 3, 0),
	})
	second, err := svc.Export(context.Background(), 1)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	assertPDF(t, second)
	if bytes.Equal(first, second) {
		t.Fatalf("second export should replace the empty document")
	}

	path, _ := store.ShopListPath("alice")
	onDisk, _ := os.ReadFile(path)
	if !bytes.Equal(onDisk, second) {
		t.Fatalf("file on disk is not the latest export")
	}
}

func TestExport_MissingIngredientKeepsPreviousFile(t *testing.T) {
	svc, source, store := newTestShoppingList(t, nil, nil)

	good, err := svc.Export(context.Background(), 1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	source.set(1, []models.RecipeIngredientRow{
		row(10, 1, "Salt", "g", 3, 0),
		{RecipeID: 10, Amount: 4, Position: 1},
	})
	if _, err := svc.Export(context.Background(), 1); !errors.Is(err, ErrExportFailed) {
		t.Fatalf("want ErrExportFailed, got %v", err)
	}

	path, _ := store.ShopListPath("alice")
	onDisk, _ := os.ReadFile(path)
	if !bytes.Equal(onDisk, good) {
		t.Fatalf("failed export must leave previous file untouched")
	}
}

func TestExport_Failures(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		srcErr error
	}{
		{name: "unknown user", userID: 99},
		{name: "storage error", userID: 1, srcErr: errors.New("db down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, source, _ := newTestShoppingList(t, nil, nil)
			source.err = tt.srcErr
			if _, err := svc.Export(context.Background(), tt.userID); !errors.Is(err, ErrExportFailed) {
				t.Fatalf("want ErrExportFailed, got %v", err)
			}
		})
	}
}

func TestExport_UsersAreIsolated(t *testing.T) {
	svc, source, store := newTestShoppingList(t, nil, nil)
	source.set(2, []models.RecipeIngredientRow{row(30, 3, "Milk", "ml", 250, 0)})

	alice, err := svc.Export(context.Background(), 1)
	if err != nil {
		t.Fatalf("alice: %v", err)
	}
	bob, err := svc.Export(context.Background(), 2)
	if err != nil {
		t.Fatalf("bob: %v", err)
	}
	if bytes.Equal(alice, bob) {
		t.Fatalf("alice and bob should get different documents")
	}

	alicePath, _ := store.ShopListPath("alice")
	bobPath, _ := store.ShopListPath("bob")
	if alicePath == bobPath {
		t.Fatalf("paths must differ per user")
	}
}

func TestExport_ConcurrentSameUser(t *testing.T) {
	svc, source, store := newTestShoppingList(t, nil, nil)
	source.set(1, []models.RecipeIngredientRow{
		row(10, 1, "Salt", "g", 3, 0),
		row(10, 2, "Flour", "g", 200, 1),
	})

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := svc.Export(context.Background(), 1)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				errs <- errors.New("corrupted export")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent export: %v", err)
	}

	path, _ := store.ShopListPath("alice")
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	assertPDF(t, onDisk)

	if n := svc.locks.Count(); n != 0 {
		t.Fatalf("locks left after exports: %d", n)
	}
}

func TestLock_SerializesAndReleases(t *testing.T) {
	svc, _, _ := newTestShoppingList(t, nil, nil)

	unlock := svc.lock("alice")
	acquired := make(chan struct{})
	go func() {
		release := svc.lock("alice")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first is held")
	case <-time.After(50 * time.Millisecond):
	}

	// 其他用户不受影响
	releaseBob := svc.lock("bob")
	releaseBob()

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired")
	}

	deadline := time.Now().Add(time.Second)
	for svc.locks.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("locks not released: %v", svc.locks.Keys())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestExport_DottedUsername(t *testing.T) {
	svc, source, store := newTestShoppingList(t, nil, nil)
	source.set(3, []models.RecipeIngredientRow{row(10, 1, "Salt", "g", 3, 0)})

	data, err := svc.Export(context.Background(), 3)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	path, err := store.ShopListPath("john..doe")
	if err != nil {
		t.Fatal(err)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.Equal(onDisk, data) {
		t.Fatalf("returned bytes differ from file on disk")
	}
}

func TestExport_MirrorToOss(t *testing.T) {
	oss := &fakeOss{}
	conf := &config.ShopList{MergeKey: config.MergeKeyName, FontSize: 12, MirrorToOss: true}
	svc, _, _ := newTestShoppingList(t, conf, oss)

	data, err := svc.Export(context.Background(), 1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, ok := oss.uploaded["shop_list/alice/output.pdf"]
	if !ok {
		t.Fatalf("export was not mirrored")
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("mirrored bytes differ")
	}
}

func TestExport_MirrorFailureIsNotSurfaced(t *testing.T) {
	oss := &fakeOss{err: errors.New("oss unavailable")}
	conf := &config.ShopList{MergeKey: config.MergeKeyName, FontSize: 12, MirrorToOss: true}
	svc, _, _ := newTestShoppingList(t, conf, oss)

	if _, err := svc.Export(context.Background(), 1); err != nil {
		t.Fatalf("mirror failure should not fail export: %v", err)
	}
}

func TestGroupRows(t *testing.T) {
	rows := []models.RecipeIngredientRow{
		row(20, 1, "Salt", "g", 5, 0),
		row(20, 2, "Flour", "g", 200, 1),
		row(10, 1, "Salt", "g", 3, 0),
	}
	recipes, err := groupRows(rows)
	if err != nil {
		t.Fatalf("groupRows: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("want 2 recipes, got %d", len(recipes))
	}
	if recipes[0].ID != 20 || len(recipes[0].Ingredients) != 2 {
		t.Fatalf("unexpected first recipe: %+v", recipes[0])
	}
	if recipes[1].ID != 10 || recipes[1].Ingredients[0].Amount != 3 {
		t.Fatalf("unexpected second recipe: %+v", recipes[1])
	}
}

func TestMergeKeyFromConfig(t *testing.T) {
	svc, source, _ := newTestShoppingList(t, &config.ShopList{MergeKey: config.MergeKeyNameUnit}, nil)
	source.set(1, []models.RecipeIngredientRow{
		row(10, 1, "Salt", "g", 3, 0),
		row(11, 4, "Salt", "tsp", 1, 0),
	})
	if _, err := svc.Export(context.Background(), 1); err != nil {
		t.Fatalf("export: %v", err)
	}
	if svc.mergeKey() != shoplist.KeyByNameAndUnit {
		t.Fatalf("name_unit config should select KeyByNameAndUnit")
	}
}
