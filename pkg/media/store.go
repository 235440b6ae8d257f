// Package media 管理本地媒体目录下按用户划分的导出文件
package media

import (
	"Foodgram/config"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const shopListFile = "output.pdf"

var ErrInvalidUsername = errors.New("invalid username for media path")

type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// ShopListPath <root>/recipe/users/shop_list/<username>/output.pdf
func (s *Store) ShopListPath(username string) (string, error) {
	if username == "" || username == "." || username == ".." || strings.ContainsAny(username, `/\`) {
		return "", ErrInvalidUsername
	}
	return filepath.Join(s.Root, "recipe", "users", "shop_list", username, shopListFile), nil
}

// WriteAtomic 先写同目录临时文件再 rename，失败时旧文件保持不变
func (s *Store) WriteAtomic(path string, fn func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create media dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = fn(tmp); err != nil {
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func (s *Store) Read(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func ProvideStore(cfg *config.Config) *Store {
	return NewStore(cfg.Media.Root)
}
