package logger

import (
	"context"
	"sync"
)

const (
	requestIDField string = "request-id"
)

//nolint:gochecknoglobals
var (
	logKeys = make(map[key]struct{})
	mtx     sync.RWMutex
)

type key string

func SetFieldCtx(ctx context.Context, name, val string) context.Context {
	nameKey := key("logger." + name)

	mtx.RLock()
	_, ok := logKeys[nameKey]
	mtx.RUnlock()

	if !ok {
		mtx.Lock()
		logKeys[nameKey] = struct{}{}
		mtx.Unlock()
	}

	return context.WithValue(ctx, nameKey, val)
}

func GetFieldCtx(ctx context.Context, name string) string {
	nameKey := key("logger." + name)
	val, _ := ctx.Value(nameKey).(string)

	return val
}

// SetRequestIDCtx sets request-id log field via context.
func SetRequestIDCtx(ctx context.Context, val string) context.Context {
	return SetFieldCtx(ctx, requestIDField, val)
}

func GetRequestIDCtx(ctx context.Context) string {
	return GetFieldCtx(ctx, requestIDField)
}
