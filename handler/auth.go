package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	"time"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config       *config.Config
	UserService  service.IUserService
	TokenService service.ITokenService
	Revoker      middleware.Revoker
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret), a.Revoker)
	g := r.Group("/auth/token")
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/logout", authorize, context.Wrap(a.Logout))
}

// Login 邮箱密码换取令牌
func (a *Auth) Login(c *gin.Context) error {
	var req types.TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}

	user, err := a.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return bizError(err)
	}
	token, err := a.TokenService.Issue(user.Id)
	if err != nil {
		return err
	}
	response.Success(c, types.TokenLoginResponse{AuthToken: token})
	return nil
}

// Logout 注销当前令牌
func (a *Auth) Logout(c *gin.Context) error {
	jti := c.GetString(context.CtxTokenID)
	expiresAt, _ := c.Get(context.CtxExpires)
	exp, ok := expiresAt.(time.Time)
	if jti == "" || !ok {
		return unauthorized()
	}
	if err := a.TokenService.Revoke(c.Request.Context(), jti, exp); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
