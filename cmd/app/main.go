package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/labstack/gommon/color"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	lib "git.lowcodeplatform.net/fabric/demo"
	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
	"git.lowcodeplatform.net/fabric/demo/pkg/metrics"
	"git.lowcodeplatform.net/fabric/demo/pkg/model"
	"git.lowcodeplatform.net/fabric/demo/pkg/page"
	"git.lowcodeplatform.net/fabric/demo/pkg/servers"
	"git.lowcodeplatform.net/fabric/demo/pkg/servers/httpserver"
	"git.lowcodeplatform.net/fabric/demo/pkg/service"
	"git.lowcodeplatform.net/fabric/demo/pkg/upstream"
)

var (
	serviceVersion string
	hashCommit     string
)

func main() {
	err := lib.RunServiceFuncCLI(context.Background(), Start)
	if err != nil {
		fmt.Printf("%s (os.exit 1)\n", err)
		os.Exit(1)
	}
}

// Start стартуем сервис в роли backend или frontend
func Start(ctxm context.Context, configfile, role, port string) (err error) {
	var cfg model.Config

	done := color.Green("[OK]")
	fail := color.Red("[Fail]")

	ctx, cancel := context.WithCancel(ctxm)
	defer cancel()

	_, err = lib.ConfigLoad(configfile, &cfg)
	if err != nil {
		return fmt.Errorf("%s (%s)", "Error. Load config is failed.", err)
	}

	// параметры командной строки приоритетнее окружения
	if role != "" {
		cfg.Service = role
	}
	if port != "" {
		cfg.Port = port
	}
	if err = cfg.Validate(); err != nil {
		fmt.Printf("%s Invalid config: %s\n", fail, err)
		return err
	}

	cfg.ServiceVersion = serviceVersion
	cfg.HashCommit = hashCommit
	cfg.HashRun = ksuid.New().String()
	if len(configfile) < 200 {
		cfg.ConfigName = strings.TrimSuffix(filepath.Base(configfile), filepath.Ext(configfile))
	}

	err = logger.SetupDefaultLogger(cfg.Service,
		logger.WithCustomField(logger.ServiceIDKey, cfg.HashRun),
		logger.WithCustomField(logger.ConfigIDKey, cfg.ConfigName),
		logger.WithCustomField(logger.ServiceTypeKey, cfg.Service),
	)
	if err != nil {
		fmt.Printf("%s Error init logger: %s\n", fail, err)
		return err
	}
	if err = logger.SetLevel(cfg.LogsLevel); err != nil {
		fmt.Printf("%s %s, level %s is used\n", fail, err, "info")
	}

	fmt.Printf("%s Enabled logs (level: %s)\n", done, cfg.LogsLevel)
	logger.Info(ctx, "Запускаем сервис",
		zap.String("service", cfg.Service),
		zap.String("environment", cfg.Environment),
		zap.String("version", cfg.ServiceVersion))

	defer func() {
		rec := recover()
		if rec != nil {
			b := string(debug.Stack())
			logger.Error(ctx, "Recover panic from main function.", zap.Any("panic", rec), zap.String("debug stack", b))
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	registry := metrics.NewRegistry(cfg.MetricsNamespace)
	registry.SetBuildInfo(cfg.ServiceVersion, cfg.HashCommit)

	var up service.Upstream
	var index http.Handler

	if cfg.Service == model.ServiceFrontend {
		up = upstream.New(cfg.BackendURL, cfg.UpstreamTimeout.Value, registry)

		pg, err := page.New(page.Params{Service: cfg.Service, Version: cfg.ServiceVersion})
		if err != nil {
			logger.Error(ctx, "Error build index page", zap.Error(err))
			return err
		}
		index = pg

		logger.Info(ctx, "Backend для /api/data", zap.String("backend", cfg.BackendURL),
			zap.Duration("timeout", cfg.UpstreamTimeout.Value))
	}

	src := service.New(
		cfg,
		up,
	)

	hs := httpserver.New(
		ctx,
		cfg,
		src,
		registry,
		index,
		serviceVersion,
		hashCommit,
	)

	// для завершения сервиса ждем сигнал в процесс
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(ch)
	go ListenForShutdown(ctx, ch, cancel)

	srv := servers.New(
		"http",
		hs,
		cfg,
	)

	return srv.Run(ctx)
}

// ListenForShutdown по сигналу отменяем контекст, сервер завершает активные запросы сам
func ListenForShutdown(ctx context.Context, ch <-chan os.Signal, cancelFunc context.CancelFunc) {
	var done = color.Grey("[OK]")

	select {
	case sig := <-ch:
		logger.Info(ctx, "Service is stopping", zap.String("signal", sig.String()))
		fmt.Printf("%s Service is stopping (%s)\n", done, sig)
		cancelFunc()
	case <-ctx.Done():
	}
}
