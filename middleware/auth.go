package middleware

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	stdctx "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Revoker 已注销令牌查询
type Revoker interface {
	IsRevoked(ctx stdctx.Context, jti string) (bool, error)
}

// Auth 必须登录
func Auth(secret []byte, revoker Revoker) gin.HandlerFunc {
	return authenticate(secret, revoker, true)
}

// OptionalAuth 未携带令牌时按匿名处理，携带了无效令牌仍返回 401
func OptionalAuth(secret []byte, revoker Revoker) gin.HandlerFunc {
	return authenticate(secret, revoker, false)
}

func authenticate(secret []byte, revoker Revoker, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "令牌无效或已过期")
			return
		}
		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.L.Error("check revoked token", zap.String("jti", claims.ID), zap.Error(err))
				response.Abort(c, http.StatusInternalServerError, "系统异常")
				return
			}
			if revoked {
				response.Abort(c, http.StatusUnauthorized, "令牌已注销")
				return
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxTokenID, claims.ID)
		c.Set(context.CtxExpires, claims.ExpiresAt.Time)

		c.Next()
	}
}
