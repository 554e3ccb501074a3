package logger

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

const callStackFramesDeep = 3

func prepareFields(fields ...zap.Field) []zap.Field {
	return append([]zap.Field{where(callStackFramesDeep)}, fields...)
}

// where место вызова в формате dir/file.go:line
func where(deep int) zap.Field {
	_, file, line, ok := runtime.Caller(deep)
	if !ok {
		return zap.Skip()
	}

	return zap.String("where", fmt.Sprintf("%s/%s:%d", filepath.Base(filepath.Dir(file)), filepath.Base(file), line))
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	Logger(ctx).Debug(msg, prepareFields(fields...)...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	Logger(ctx).Info(msg, prepareFields(fields...)...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	Logger(ctx).Warn(msg, prepareFields(fields...)...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	Logger(ctx).Error(msg, prepareFields(fields...)...)
}

func Panic(ctx context.Context, msg string, fields ...zap.Field) {
	Logger(ctx).Panic(msg, prepareFields(fields...)...)
}
