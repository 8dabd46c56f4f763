// Command trainworker retrains the duration model from Pub/Sub push events.
package main

import (
	"context"
	"log/slog"
	"os"

	"routecast/config"
	"routecast/internal/delivery"
	"routecast/internal/delivery/worker"
	"routecast/internal/delivery/worker/handler"
	"routecast/internal/domain/prediction"
	"routecast/internal/infra/artifact"
	logs "routecast/internal/infra/log"
	"routecast/internal/infra/ml"
	"routecast/internal/infra/persistence/postgres"
	"routecast/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Provide(
			postgres.NewTripRepository,
			postgres.NewModelArtifactRepository,
			artifact.ProvideMirror,
		),
		fx.Provide(
			prediction.NewRegistry,
			ml.NewJSONCodec,
			ml.NewGBRFitter,
			impl.NewTrainingService,
		),
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
