package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// Collection は1種類のレコードをキー付きで保持し、1つのJSONファイルに永続化する
// ファイルは Open 時に1度だけ読み込み、変更のたびに全体を書き直す
type Collection[T any] struct {
	mu      sync.RWMutex
	name    string
	path    string
	items   map[string]T
	check   func(key string, rec T) error
	metrics *metrics.Metrics
}

// Open はファイルを読み込んでコレクションを作成する
// ファイルが存在しない場合、または壊れている場合は空のコレクションになる（後者は警告ログを出す）
// check が nil でなければ読み込んだレコードごとに呼び、エラーのレコードは警告ログを出して読み飛ばす
func Open[T any](name, path string, m *metrics.Metrics, check func(key string, rec T) error) *Collection[T] {
	c := &Collection[T]{
		name:    name,
		path:    path,
		check:   check,
		metrics: m,
	}
	c.items = c.load()
	return c
}

func (c *Collection[T]) load() map[string]T {
	log := logger.With(zap.String("store", c.name), zap.String("path", c.path))

	b, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("ストアファイルが存在しないため空で初期化")
		c.metrics.ObserveLoad(c.name, metrics.LoadMissing)
		return make(map[string]T)
	}
	if err != nil {
		log.Warn("ストアファイルを読み込めないため空で初期化", zap.Error(err))
		c.metrics.ObserveLoad(c.name, metrics.LoadCorrupt)
		return make(map[string]T)
	}

	var items map[string]T
	if err := json.Unmarshal(b, &items); err != nil {
		log.Warn("ストアファイルが壊れているため空で初期化", zap.Error(err))
		c.metrics.ObserveLoad(c.name, metrics.LoadCorrupt)
		return make(map[string]T)
	}
	if items == nil {
		items = make(map[string]T)
	}
	if c.check != nil {
		for k, v := range items {
			if err := c.check(k, v); err != nil {
				log.Warn("不正なレコードを読み飛ばし", zap.String("key", k), zap.Error(err))
				delete(items, k)
			}
		}
	}
	log.Debug("ストアファイルを読み込み", zap.Int("count", len(items)))
	c.metrics.ObserveLoad(c.name, metrics.LoadLoaded)
	return items
}

// Get はキーに対応するレコードを返す
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Keys はキーを昇順で返す
func (c *Collection[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.items)
}

// Mutate はレコードの複製に fn を適用し、ファイルへ書き出せた場合のみ反映する
// fn がエラーを返した場合は何も変更しない
func (c *Collection[T]) Mutate(fn func(items map[string]T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[string]T, len(c.items)+1)
	for k, v := range c.items {
		next[k] = v
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := writeFileAtomic(c.path, next); err != nil {
		return fmt.Errorf("%s の保存に失敗: %w", c.name, err)
	}
	c.items = next
	return nil
}

func sortedKeys[T any](items map[string]T) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeFileAtomic は一時ファイルに書き込んでから rename で置き換える
func writeFileAtomic(path string, v any) error {
	if path == "" {
		return fmt.Errorf("保存先のパスが空です")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("fsync tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close tmp: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("fsync dir: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("fsync dir: %w", err)
	}
	return nil
}
