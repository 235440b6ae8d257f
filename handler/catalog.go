package handler

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

// Catalog 标签与食材，只读
type Catalog struct {
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	r.GET("/tags", context.Wrap(h.Tags))
	r.GET("/tags/:id", context.Wrap(h.Tag))
	r.GET("/ingredients", context.Wrap(h.Ingredients))
	r.GET("/ingredients/:id", context.Wrap(h.Ingredient))
}

func (h *Catalog) Tags(c *gin.Context) error {
	tags, err := h.CatalogService.Tags(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, tags)
	return nil
}

func (h *Catalog) Tag(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	tag, err := h.CatalogService.Tag(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, tag)
	return nil
}

func (h *Catalog) Ingredients(c *gin.Context) error {
	var q types.IngredientQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return badRequest(err)
	}
	items, err := h.CatalogService.Ingredients(c.Request.Context(), q.Name)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Catalog) Ingredient(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.CatalogService.Ingredient(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}
