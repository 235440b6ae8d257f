package handler

import (
	"Foodgram/types"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// withLinks 补齐 next/previous 绝对地址
func withLinks[T any](c *gin.Context, p *types.Page[T], q types.PageQuery) *types.Page[T] {
	if int64(q.Page)*int64(q.Limit) < p.Count {
		next := pageURL(c, q.Page+1)
		p.Next = &next
	}
	if q.Page > 1 {
		prev := pageURL(c, q.Page-1)
		p.Previous = &prev
	}
	return p
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	values := c.Request.URL.Query()
	if page <= 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: values.Encode(),
	}
	return u.String()
}
