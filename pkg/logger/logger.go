// Package logger обертка над zap: единый логгер сервиса с полями из контекста запроса
package logger

import (
	"context"
	"strings"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultLogger *Engine
	level         = zap.NewAtomicLevelAt(zap.InfoLevel)
	setupMx       sync.RWMutex
)

// ключи постоянных полей сервиса
const (
	ServiceIDKey   = "service-id"
	ServiceTypeKey = "service-type"
	ConfigIDKey    = "config-id"
)

type Engine struct {
	*zap.Logger
}

// SetupDefaultLogger инициирует логгер по-умолчанию (вывод в stdout, json)
func SetupDefaultLogger(namespace string, options ...ConfigOption) error {
	logger, err := initLogger(options...)
	if err != nil {
		return errors.Wrap(err, "cannot build zap logger")
	}

	setupMx.Lock()
	defaultLogger = New(logger.Named(namespace))
	setupMx.Unlock()

	return nil
}

// SetupEngine подменяет логгер по-умолчанию готовым (используется в тестах с zaptest/observer)
func SetupEngine(l *zap.Logger) {
	setupMx.Lock()
	defaultLogger = New(l)
	setupMx.Unlock()
}

// Logger возвращает логгер, дополненный полями из контекста.
// Если логгер не инициирован - пишем в никуда, чтобы не падать в пакетах без main.
func Logger(ctx context.Context) *Engine {
	setupMx.RLock()
	l := defaultLogger
	setupMx.RUnlock()

	if l == nil {
		return New(zap.NewNop())
	}

	return l.WithContext(ctx)
}

// SetLevel меняет уровень логирования на лету
func SetLevel(lvl string) error {
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(strings.ToLower(lvl))); err != nil {
		return errors.Wrapf(err, "unknown log level %q", lvl)
	}
	level.SetLevel(zl)

	return nil
}

// Sync сбрасывает буферы логгера при остановке сервиса.
// stdout/tty не поддерживают fsync, такие ошибки пропускаем.
func Sync() error {
	setupMx.RLock()
	l := defaultLogger
	setupMx.RUnlock()

	if l == nil {
		return nil
	}

	err := l.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return err
}

func New(logger *zap.Logger) *Engine {
	return &Engine{
		Logger: logger,
	}
}

func (l *Engine) WithContext(ctx context.Context) *Engine {
	if ctx == nil {
		return l
	}

	logger := l.Logger

	mtx.RLock()
	for field := range logKeys {
		fieldName := string(field)
		fieldNameParts := strings.Split(fieldName, ".")
		fieldName = fieldNameParts[len(fieldNameParts)-1]

		value := ctx.Value(field)
		if value == nil {
			continue
		}

		if valueStr, ok := value.(string); ok && valueStr != "" {
			logger = logger.With(zap.String(fieldName, valueStr))
		}
	}
	mtx.RUnlock()

	return &Engine{Logger: logger}
}

func initLogger(options ...ConfigOption) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = level
	config.OutputPaths = []string{"stdout"}
	config.Sampling = &zap.SamplingConfig{
		Initial:    1000,
		Thereafter: 10,
	}

	for _, opt := range options {
		config = opt(config)
	}

	return config.Build()
}
