package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	stdctx "context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const shopListFilename = "shopping_list.pdf"

type Recipe struct {
	Config              *config.Config
	RecipeService       service.IRecipeService
	CollectService      service.ICollectService
	ShoppingListService service.IShoppingListService
	Revoker             middleware.Revoker
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret, h.Revoker)
	optional := middleware.OptionalAuth(secret, h.Revoker)

	g := r.Group("/recipes")
	g.GET("", optional, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/download_shopping_cart", authorize, context.Wrap(h.DownloadShoppingCart))
	g.GET("/:id", optional, context.Wrap(h.Detail))
	g.PATCH("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/favorite", authorize, context.Wrap(h.Favorite))
	g.DELETE("/:id/favorite", authorize, context.Wrap(h.Unfavorite))
	g.POST("/:id/shopping_cart", authorize, context.Wrap(h.AddToCart))
	g.DELETE("/:id/shopping_cart", authorize, context.Wrap(h.RemoveFromCart))
}

func (h *Recipe) List(c *gin.Context) error {
	var q types.RecipeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return badRequest(err)
	}
	q.Normalize()
	page, err := h.RecipeService.List(c.Request.Context(), context.OptionalUserID(c), &q)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, withLinks(c, page, q.PageQuery))
	return nil
}

func (h *Recipe) Detail(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	recipe, err := h.RecipeService.Get(c.Request.Context(), context.OptionalUserID(c), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	recipe, err := h.RecipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, recipe)
	return nil
}

func (h *Recipe) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	recipe, err := h.RecipeService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.RecipeService.Delete(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}

func (h *Recipe) Favorite(c *gin.Context) error {
	return h.mark(c, h.CollectService.Favorite)
}

func (h *Recipe) Unfavorite(c *gin.Context) error {
	return h.unmark(c, h.CollectService.Unfavorite)
}

func (h *Recipe) AddToCart(c *gin.Context) error {
	return h.mark(c, h.CollectService.AddToCart)
}

func (h *Recipe) RemoveFromCart(c *gin.Context) error {
	return h.unmark(c, h.CollectService.RemoveFromCart)
}

type markFunc func(ctx stdctx.Context, userID, recipeID int64) (*types.RecipeShort, error)

type unmarkFunc func(ctx stdctx.Context, userID, recipeID int64) error

func (h *Recipe) mark(c *gin.Context, fn markFunc) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	short, err := fn(c.Request.Context(), userID, id)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, short)
	return nil
}

func (h *Recipe) unmark(c *gin.Context, fn unmarkFunc) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := fn(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}

// DownloadShoppingCart 导出购物清单 PDF
func (h *Recipe) DownloadShoppingCart(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	data, err := h.ShoppingListService.Export(c.Request.Context(), userID)
	middleware.ObserveShopListExport(err)
	if err != nil {
		return bizError(err)
	}
	c.Header("Content-Disposition", `attachment; filename="`+shopListFilename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
	return nil
}
