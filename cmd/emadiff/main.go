package main

import (
	"context"
	"log"

	"go.uber.org/fx"

	"emadiff/internal/modules/comparator"
	"emadiff/internal/modules/config"
	"emadiff/internal/modules/ema"
	"emadiff/internal/modules/feed"
	"emadiff/internal/modules/postgres"
	"emadiff/internal/modules/recorder"
	"emadiff/internal/notify"
	"emadiff/pkg/logger"
	"emadiff/pkg/tracing"
)

func main() {
	logger.SetServiceName("emadiff")
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
			// Notifier: без TELEGRAM_* пишем в лог
			func(cfg *config.Config) notify.Notifier {
				if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
					if tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID); err == nil {
						return tg
					}
				}
				return notify.NewStdout()
			},
		),
		config.Module(),
		postgres.Module(),
		ema.Module(),
		feed.Module(),
		comparator.Module(),
		recorder.Module(),

		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			if cfg.Jaeger.Host == "" {
				return nil
			}
			tracing.SetServiceName("emadiff")
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
	)
	app.Run()
}
