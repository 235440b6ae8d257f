package service

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserExists         = errors.New("用户名或邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrWrongPassword      = errors.New("当前密码不正确")

	ErrSelfSubscribe     = errors.New("不能订阅自己")
	ErrAlreadySubscribed = errors.New("已经订阅过该用户")
	ErrNotSubscribed     = errors.New("未订阅该用户")

	ErrTagNotFound        = errors.New("标签不存在")
	ErrIngredientNotFound = errors.New("食材不存在")
	ErrUnknownTag         = errors.New("包含不存在的标签")
	ErrUnknownIngredient  = errors.New("包含不存在的食材")
	ErrDuplicateItem      = errors.New("食材或标签重复")

	ErrRecipeNotFound = errors.New("菜谱不存在")
	ErrForbidden      = errors.New("无权修改他人的菜谱")
	ErrInvalidImage   = errors.New("图片格式错误")

	ErrAlreadyFavorited = errors.New("菜谱已在收藏中")
	ErrNotFavorited     = errors.New("菜谱不在收藏中")
	ErrAlreadyInCart    = errors.New("菜谱已在购物车中")
	ErrNotInCart        = errors.New("菜谱不在购物车中")

	ErrExportFailed = errors.New("生成购物清单失败")
)
