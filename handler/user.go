package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
	Revoker     middleware.Revoker
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	authorize := middleware.Auth(secret, u.Revoker)
	optional := middleware.OptionalAuth(secret, u.Revoker)

	g := r.Group("/users")
	g.POST("", context.Wrap(u.Register))
	g.GET("", optional, context.Wrap(u.List))
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.POST("/set_password", authorize, context.Wrap(u.SetPassword))
	g.GET("/:id", authorize, context.Wrap(u.Detail))
}

// Register 注册
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, types.RegisterResponse{
		Email:     user.Email,
		ID:        user.Id,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	return nil
}

func (u *User) List(c *gin.Context) error {
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return badRequest(err)
	}
	q.Normalize()
	page, err := u.UserService.List(c.Request.Context(), context.OptionalUserID(c), &q)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, withLinks(c, page, q))
	return nil
}

func (u *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	user, err := u.UserService.Get(c.Request.Context(), userID, userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, user)
	return nil
}

func (u *User) Detail(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := u.UserService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, user)
	return nil
}

// SetPassword 修改密码
func (u *User) SetPassword(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return unauthorized()
	}
	var req types.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := u.UserService.SetPassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}
