package handler

import (
	"Foodgram/pkg/response"
	"Foodgram/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var serviceErrors = []struct {
	err  error
	code int
}{
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrRecipeNotFound, http.StatusNotFound},
	{service.ErrTagNotFound, http.StatusNotFound},
	{service.ErrIngredientNotFound, http.StatusNotFound},
	{service.ErrNotSubscribed, http.StatusNotFound},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrUserExists, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusBadRequest},
	{service.ErrSelfSubscribe, http.StatusBadRequest},
	{service.ErrAlreadySubscribed, http.StatusBadRequest},
	{service.ErrUnknownTag, http.StatusBadRequest},
	{service.ErrUnknownIngredient, http.StatusBadRequest},
	{service.ErrDuplicateItem, http.StatusBadRequest},
	{service.ErrInvalidImage, http.StatusBadRequest},
	{service.ErrAlreadyFavorited, http.StatusBadRequest},
	{service.ErrNotFavorited, http.StatusBadRequest},
	{service.ErrAlreadyInCart, http.StatusBadRequest},
	{service.ErrNotInCart, http.StatusBadRequest},
	{service.ErrExportFailed, http.StatusBadRequest},
}

// bizError 把 service 层错误转换为带状态码的响应错误，未知错误原样返回
func bizError(err error) error {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			return response.NewError(e.code, e.err.Error())
		}
	}
	return err
}

func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusNotFound, name+" 格式错误")
	}
	return id, nil
}

func badRequest(err error) error {
	return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
}

func unauthorized() error {
	return response.NewError(http.StatusUnauthorized, "未登录")
}
