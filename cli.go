package lib

import (
	"context"
	"os"

	"github.com/urfave/cli"
)

// StartFunc запуск сервиса в выбранной роли
type StartFunc func(ctx context.Context, configfile, service, port string) error

// RunServiceFuncCLI обрабатываем параметры с консоли и вызываем переданную функцию.
// Без команды роль берется из конфигурации (SERVICE).
func RunServiceFuncCLI(ctx context.Context, funcCLI StartFunc) error {
	return newApp(ctx, funcCLI).Run(os.Args)
}

func newApp(ctx context.Context, funcCLI StartFunc) *cli.App {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Файл конфигурации (toml) или его содержимое в base64",
			Value: "",
		},
		cli.StringFlag{
			Name:  "port, p",
			Usage: "Порт, на котором запустить процесс (по-умолчанию PORT или порт роли)",
			Value: "",
		},
	}

	start := func(service string) cli.ActionFunc {
		return func(c *cli.Context) error {
			return funcCLI(ctx, c.String("config"), service, c.String("port"))
		}
	}

	appCLI := cli.NewApp()
	appCLI.Name = "app"
	appCLI.Usage = "Demo two-tier service (backend API / frontend edge)"
	appCLI.Flags = flags
	appCLI.Action = start("")
	appCLI.Commands = []cli.Command{
		{
			Name:   "backend",
			Usage:  "Start backend API service",
			Flags:  flags,
			Action: start("backend"),
		},
		{
			Name:   "frontend",
			Usage:  "Start frontend edge service (static page + /api/data relay)",
			Flags:  flags,
			Action: start("frontend"),
		},
	}

	return appCLI
}
