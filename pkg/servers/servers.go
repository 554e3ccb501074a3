// Package servers запускаем указанные виды из поддерживаемых серверов
package servers

import (
	"context"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

// Runner сервер, работающий до отмены контекста
type Runner interface {
	Run() error
}

type servers struct {
	mode       string
	httpserver Runner
	cfg        model.Config
}

type Servers interface {
	Run(ctx context.Context) error
}

// Run запускаем указанные сервера и дожидаемся их остановки.
// Ошибки серверов и сброса логов возвращаются вместе.
func (s *servers) Run(ctx context.Context) (err error) {
	if strings.Contains(s.mode, "http") {
		if e := s.httpserver.Run(); e != nil {
			logger.Error(ctx, "http server stopped with error", zap.String("service", s.cfg.Service), zap.Error(e))
			err = multierr.Append(err, e)
		}
	}

	return multierr.Append(err, logger.Sync())
}

func New(
	mode string,
	httpserver Runner,
	cfg model.Config,
) Servers {
	return &servers{
		mode,
		httpserver,
		cfg,
	}
}
