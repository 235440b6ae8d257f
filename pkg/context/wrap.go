package context

import (
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID  = "user_id"
	CtxTokenID = "token_id"
	CtxExpires = "token_expires"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			// 未知错误只记日志，不把细节返回给调用方
			log.L.Error("unhandled handler error",
				zap.String("path", c.FullPath()),
				zap.String("method", c.Request.Method),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: http.StatusInternalServerError,
				Msg:  "系统异常",
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// OptionalUserID 未登录时返回 0
func OptionalUserID(c *gin.Context) int64 {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}
