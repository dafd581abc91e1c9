package comparator

import (
	"context"

	"go.uber.org/fx"

	"emadiff/internal/models"
	"emadiff/internal/modules/comparator/service"
	feedsvc "emadiff/internal/modules/feed/service"
	"emadiff/pkg/logger"
)

func newSamplesChan() chan models.DivergenceSample {
	return make(chan models.DivergenceSample, 4096)
}
func asSendOnlySamples(ch chan models.DivergenceSample) chan<- models.DivergenceSample { return ch }

func Module() fx.Option {
	return fx.Module("comparator",
		fx.Provide(
			newSamplesChan,    // chan models.DivergenceSample
			asSendOnlySamples, // chan<- models.DivergenceSample
			service.NewHub,    // *service.Hub (gets Config, Params, Notifier, chan<-)
		),

		fx.Invoke(func(lc fx.Lifecycle, hub *service.Hub, src feedsvc.Source, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						logger.Info("[CMP] hub loop started")
						ticks := src.Stream(ctx)
						for {
							select {
							case <-ctx.Done():
								logger.Info("[CMP] hub loop stopped")
								return
							case t, ok := <-ticks:
								if !ok {
									logger.Info("[CMP] feed closed")
									return
								}
								hub.OnTick(ctx, t)
							}
						}
					}()
					return nil
				},
			})
		}),
	)
}
