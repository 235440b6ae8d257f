package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// HttpStatus 业务码落在 4xx/5xx 时直接作为 HTTP 状态码
func (e *BizError) HttpStatus() int {
	if e.Code >= http.StatusBadRequest && e.Code <= 599 {
		return e.Code
	}
	return http.StatusOK
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
