package ema

import (
	"go.uber.org/fx"

	"emadiff/internal/modules/config"
	"emadiff/internal/modules/ema/service"
)

// Module provides the Params shared by both engine variants: one window,
// one smoothing factor, one alpha, derived once.
func Module() fx.Option {
	return fx.Module("ema",
		fx.Provide(
			func(cfg *config.Config) service.Params {
				return service.NewParams(cfg.EMA.Window, cfg.EMA.Smoothing)
			},
		),
	)
}
