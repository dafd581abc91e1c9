package feed

import (
	"go.uber.org/fx"

	"emadiff/internal/modules/config"
	"emadiff/internal/modules/feed/service"
)

func Module() fx.Option {
	return fx.Module("feed",
		fx.Provide(
			// replay mode streams the configured series; everything else
			// goes to the live websocket
			func(cfg *config.Config) service.Source {
				if cfg.Feed.Mode == "replay" {
					return service.NewReplay(cfg.Feed.InstID, cfg.Replay.Series, cfg.Replay.Interval)
				}
				return service.NewClient(cfg)
			},
		),
	)
}
