package logger

import (
	"go.uber.org/zap"
)

type ConfigOption func(cfg zap.Config) zap.Config

// WithCustomField добавляет постоянные поля в логи
func WithCustomField(key, value string) ConfigOption {
	return func(cfg zap.Config) zap.Config {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]interface{}{}
		}
		cfg.InitialFields[key] = value

		return cfg
	}
}

func WithOutputPaths(paths []string) ConfigOption {
	return func(cfg zap.Config) zap.Config {
		cfg.OutputPaths = paths
		return cfg
	}
}
