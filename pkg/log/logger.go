package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const projectName = "Foodgram"

var L *zap.Logger

func init() {
	L = New(zapcore.AddSync(os.Stdout), zap.InfoLevel)
}

// New 构建 JSON 日志，caller 只保留项目内的相对路径
func New(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// SetDebug 开启 debug 级别输出
func SetDebug(debug bool) {
	if debug {
		L = New(zapcore.AddSync(os.Stdout), zap.DebugLevel)
	}
}
