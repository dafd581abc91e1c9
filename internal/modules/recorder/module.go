package recorder

import (
	"context"

	"go.uber.org/fx"

	"emadiff/internal/models"
	"emadiff/internal/modules/recorder/service"
	"emadiff/pkg/logger"
)

func Module() fx.Option {
	return fx.Module("recorder",
		fx.Provide(
			service.NewRecorder, // *service.Recorder
		),

		fx.Invoke(func(lc fx.Lifecycle, rec *service.Recorder, samples chan models.DivergenceSample, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						for {
							select {
							case <-ctx.Done():
								return
							case s := <-samples:
								if err := rec.Record(ctx, s); err != nil {
									logger.Error("[REC] %v", err)
								}
							}
						}
					}()
					return nil
				},
			})
		}),
	)
}
