package main

import (
	"context"
	"log/slog"
	"os"

	"routecast/config"
	"routecast/internal/delivery"
	"routecast/internal/delivery/api"
	"routecast/internal/delivery/api/router/handler"
	"routecast/internal/domain/prediction"
	"routecast/internal/infra/artifact"
	"routecast/internal/infra/cache"
	"routecast/internal/infra/holiday"
	logs "routecast/internal/infra/log"
	"routecast/internal/infra/ml"
	"routecast/internal/infra/persistence/postgres"
	"routecast/internal/infra/pubsub"
	"routecast/internal/infra/qrcode"
	"routecast/internal/infra/routing"
	"routecast/internal/infra/weather"
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
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			impl.LoadModelOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewWeatherCache,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewIncidentRepository,
			postgres.NewTripRepository,
			postgres.NewFavoriteRepository,
			postgres.NewSettingsRepository,
			postgres.NewModelArtifactRepository,
			artifact.ProvideMirror,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			weather.New,
			holiday.NewPanamaCalendar,
			prediction.NewRegistry,
			ml.NewJSONCodec,
			ml.NewGBRFitter,
			qrcode.NewQRCodeService,
		),
		routing.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPredictionService,
			impl.NewTrainingService,
			impl.NewWeatherService,
			impl.NewIncidentService,
			impl.NewRouteService,
			impl.NewTripService,
			impl.NewFavoriteService,
			impl.NewSettingsService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRouteHandler,
			handler.NewIncidentHandler,
			handler.NewTripHandler,
			handler.NewWeatherHandler,
			handler.NewFavoriteHandler,
			handler.NewSettingsHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
