// Package validate 注册 gin binding 使用的自定义校验规则
package validate

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 字母、数字及 @.+-_
var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// me 与路由冲突，. 和 .. 不能作为目录名
var reservedUsernames = map[string]struct{}{"me": {}, ".": {}, "..": {}}

var (
	once sync.Once
	std  = newValidate()
)

// Register 向 gin 默认校验器注册规则，可重复调用
func Register() {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerRules(v)
		}
	})
}

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerRules(v)
	return v
}

func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("username", username)
	_ = v.RegisterValidation("hexcolor7", hexColor)
}

// Struct 按 validate 标签校验，用于 HTTP 之外的输入（如导入数据）
func Struct(s any) error {
	return std.Struct(s)
}

func username(fl validator.FieldLevel) bool {
	return IsValidUsername(fl.Field().String())
}

func IsValidUsername(s string) bool {
	if _, ok := reservedUsernames[s]; ok {
		return false
	}
	return usernameRe.MatchString(s)
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func hexColor(fl validator.FieldLevel) bool {
	return hexColorRe.MatchString(fl.Field().String())
}
