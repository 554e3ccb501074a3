package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
	"git.lowcodeplatform.net/fabric/demo/pkg/metrics"
	"git.lowcodeplatform.net/fabric/demo/pkg/model"
	"git.lowcodeplatform.net/fabric/demo/pkg/service"
)

type httpserver struct {
	ctx      context.Context
	cfg      model.Config
	src      service.Service
	registry *metrics.Registry
	page     http.Handler

	serviceVersion string
	hashCommit     string
}

type Server interface {
	Run() (err error)
	Handler() http.Handler
}

// Run запускает сервер и блокируется до отмены контекста, после чего
// дожидается завершения активных запросов (не дольше ShutdownTimeout)
func (h *httpserver) Run() error {
	done := color.Green("[OK]")
	fail := color.Red("[NO]")

	ln, err := net.Listen("tcp", ":"+h.cfg.Port)
	if err != nil {
		fmt.Printf("%s Error run (port:%s) err: %s\n", fail, h.cfg.Port, err)
		return errors.Wrap(err, "SERVER listen")
	}

	return h.serve(ln, done, fail)
}

func (h *httpserver) serve(ln net.Listener, done, fail string) error {
	srv := &http.Server{
		Handler:      h.Handler(),
		ReadTimeout:  h.cfg.ReadTimeout.Value,
		WriteTimeout: h.cfg.WriteTimeout.Value,
		BaseContext:  func(net.Listener) context.Context { return h.ctx },
	}

	fmt.Printf("%s Service %s run (port:%s)\n", done, h.cfg.Service, h.cfg.Port)
	logger.Info(h.ctx, "Запуск http сервера",
		zap.String("service", h.cfg.Service),
		zap.String("addr", ln.Addr().String()),
		zap.String("version", h.serviceVersion),
		zap.String("commit", h.hashCommit))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case e := <-errCh:
		if e != nil && !errors.Is(e, http.ErrServerClosed) {
			fmt.Printf("%s Error run (port:%s) err: %s\n", fail, h.cfg.Port, e)
			return errors.Wrap(e, "SERVER run")
		}
		return nil
	case <-h.ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.cfg.ShutdownTimeout.Value)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "SERVER shutdown")
	}
	logger.Info(h.ctx, "http сервер остановлен", zap.String("service", h.cfg.Service))

	return nil
}

func New(
	ctx context.Context,
	cfg model.Config,
	src service.Service,
	registry *metrics.Registry,
	page http.Handler,
	serviceVersion string,
	hashCommit string,
) Server {
	return &httpserver{
		ctx,
		cfg,
		src,
		registry,
		page,
		serviceVersion,
		hashCommit,
	}
}
