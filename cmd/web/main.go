package main

import (
	"context"
	"log/slog"
	"os"

	"sampleapp/config"
	"sampleapp/internal/delivery"
	"sampleapp/internal/delivery/api"
	"sampleapp/internal/delivery/api/router/handler"
	"sampleapp/internal/domain/service"
	logs "sampleapp/internal/infra/log"
	"sampleapp/internal/infra/persistence/database"
	"sampleapp/internal/infra/qrcode"
	"sampleapp/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize          = 256
	defaultQRCodeRecoveryLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			database.RegisterSeeder,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewAttendeeRepository,
			database.NewWeatherForecastRepository,
			database.NewUnitOfWork,
			database.NewScopeFactory,
			database.NewSeeder,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCheckInQRCodeService,
		),
	)
}

// newCheckInQRCodeService creates the QR code service from config, falling back to defaults
func newCheckInQRCodeService(cfg *config.Config) service.CheckInQRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewCheckInQRCodeService(defaultQRCodeSize, defaultQRCodeRecoveryLevel)
	}

	return qrcode.NewCheckInQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGetAttendeesService,
			impl.NewUpdateAttendeeAttendanceService,
			impl.NewCheckInAttendeeService,
			impl.NewGetAttendeeCheckInQRService,
			impl.NewGetWeatherForecastsService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAttendeeHandler,
			handler.NewWeatherForecastHandler,
			handler.NewPageHandler,
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
				os.Exit(1)
			}
		}()
	}
}
