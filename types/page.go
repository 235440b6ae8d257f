package types

const (
	DefaultPage     = 1
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// PageQuery 页码分页参数
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (p *PageQuery) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
}

func (p *PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page 分页结果，Next/Previous 由 handler 根据请求地址补齐
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func NewPage[T any](count int64, results []T) *Page[T] {
	if results == nil {
		results = make([]T, 0)
	}
	return &Page[T]{Count: count, Results: results}
}
