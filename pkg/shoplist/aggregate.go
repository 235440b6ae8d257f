// Package shoplist 汇总购物车中菜谱的食材用量并渲染为 PDF。
//
// 汇总结果按食材首次出现的顺序排列，同名食材合并为一行，
// 单位取第一次出现时的单位。
package shoplist

import "fmt"

// Entry 某个菜谱中的一条食材用量
type Entry struct {
	Name   string
	Unit   string
	Amount int64
}

// Recipe 参与汇总的菜谱
type Recipe struct {
	ID          int64
	Ingredients []Entry
}

// Item 汇总后的一行
type Item struct {
	Name  string
	Unit  string
	Total int64
}

// Conflict 同名食材出现了不同的单位，Kept 为保留的单位
type Conflict struct {
	Name    string
	Kept    string
	Dropped string
}

// MergeKey 决定哪些条目被合并为同一行
type MergeKey int

const (
	KeyByName MergeKey = iota
	KeyByNameAndUnit
)

type options struct {
	key MergeKey
}

type Option func(*options)

func WithMergeKey(k MergeKey) Option {
	return func(o *options) { o.key = k }
}

// List 按插入顺序保存的 name -> Item 映射
type List struct {
	key       MergeKey
	index     map[string]int
	items     []Item
	conflicts []Conflict
}

func newList(key MergeKey) *List {
	return &List{key: key, index: make(map[string]int)}
}

// Aggregate 汇总食材用量，不校验 Amount
func Aggregate(recipes []Recipe, opts ...Option) *List {
	o := options{key: KeyByName}
	for _, opt := range opts {
		opt(&o)
	}

	l := newList(o.key)
	for _, r := range recipes {
		for _, e := range r.Ingredients {
			l.add(e)
		}
	}
	return l
}

func (l *List) keyOf(e Entry) string {
	if l.key == KeyByNameAndUnit {
		return e.Name + "\x00" + e.Unit
	}
	return e.Name
}

func (l *List) add(e Entry) {
	k := l.keyOf(e)
	if i, ok := l.index[k]; ok {
		item := &l.items[i]
		item.Total += e.Amount
		if item.Unit != e.Unit {
			l.conflicts = append(l.conflicts, Conflict{Name: e.Name, Kept: item.Unit, Dropped: e.Unit})
		}
		return
	}
	l.index[k] = len(l.items)
	l.items = append(l.items, Item{Name: e.Name, Unit: e.Unit, Total: e.Amount})
}

func (l *List) Len() int { return len(l.items) }

// Items 返回副本
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Get 按名称查找，KeyByNameAndUnit 模式下返回该名称的第一行
func (l *List) Get(name string) (Item, bool) {
	if l.key == KeyByName {
		i, ok := l.index[name]
		if !ok {
			return Item{}, false
		}
		return l.items[i], true
	}
	for _, it := range l.items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

func (l *List) Conflicts() []Conflict {
	return l.conflicts
}

// Lines 每行格式为 "<name> (<unit>) -- <total>"
func (l *List) Lines() []string {
	lines := make([]string, 0, len(l.items))
	for _, it := range l.items {
		lines = append(lines, it.String())
	}
	return lines
}

func (it Item) String() string {
	return fmt.Sprintf("%s (%s) -- %d", it.Name, it.Unit, it.Total)
}
