package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
	Revoker       middleware.Revoker
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret), f.Revoker)
	g := r.Group("/users", authorize)
	g.GET("/subscriptions", context.Wrap(f.Subscriptions))
	g.POST("/:id/subscribe", context.Wrap(f.Subscribe))
	g.DELETE("/:id/subscribe", context.Wrap(f.Unsubscribe))
}

// Subscribe 订阅作者
func (f *Follow) Subscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	authorID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	recipesLimit, _ := strconv.Atoi(c.Query("recipes_limit"))

	sub, err := f.FollowService.Subscribe(c.Request.Context(), userID, authorID, recipesLimit)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, sub)
	return nil
}

// Unsubscribe 取消订阅
func (f *Follow) Unsubscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	authorID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := f.FollowService.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}

// Subscriptions 我的订阅
func (f *Follow) Subscriptions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	var q types.SubscriptionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return badRequest(err)
	}
	q.Normalize()

	page, err := f.FollowService.Subscriptions(c.Request.Context(), userID, &q)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, withLinks(c, page, q.PageQuery))
	return nil
}
