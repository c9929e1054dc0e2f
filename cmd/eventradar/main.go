package main

import (
	"context"
	"log/slog"
	"os"

	"eventradar/config"
	"eventradar/internal/delivery"
	"eventradar/internal/delivery/api"
	apimiddleware "eventradar/internal/delivery/api/middleware"
	"eventradar/internal/delivery/api/router/handler"
	"eventradar/internal/delivery/scheduler"
	"eventradar/internal/domain/service"
	"eventradar/internal/infra/channel/fcm"
	"eventradar/internal/infra/channel/telegram"
	logs "eventradar/internal/infra/log"
	"eventradar/internal/infra/metrics"
	"eventradar/internal/infra/persistence/postgres"
	"eventradar/internal/infra/pubsub"
	"eventradar/internal/infra/source/afisha"
	"eventradar/internal/infra/source/kudago"
	"eventradar/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerDBStats,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self(), new(service.MetricsRecorder), new(handler.MetricsExporter)),
		),
	)
}

// registerDBStats exports the event store's pool statistics next to the pipeline counters
func registerDBStats(m *metrics.Metrics, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(m.RegisterDB(sqlDB), "failed to register pool metrics")
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEventRepository,
			postgres.NewRecipientRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			fx.Annotate(
				kudago.NewSource,
				fx.As(new(service.EventSource)),
				fx.ResultTags(`group:"sources"`),
			),
			fx.Annotate(
				afisha.NewSource,
				fx.As(new(service.EventSource)),
				fx.ResultTags(`group:"sources"`),
			),
			fx.Annotate(
				newTelegramChannel,
				fx.ResultTags(`group:"channels,flatten"`),
			),
			fx.Annotate(
				newFCMChannel,
				fx.ResultTags(`group:"channels,flatten"`),
			),
		),
	)
}

// newTelegramChannel creates the Telegram channel when a bot token is configured
func newTelegramChannel(cfg *config.Config, logger *slog.Logger) ([]service.DeliveryChannel, error) {
	if cfg.Telegram.Token == "" {
		logger.Warn("Telegram token not configured, telegram recipients cannot be reached")

		return nil, nil
	}

	ch, err := telegram.NewChannel(cfg.Telegram, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Telegram channel")
	}

	return []service.DeliveryChannel{ch}, nil
}

// newFCMChannel creates the Firebase channel when credentials or a project are configured
func newFCMChannel(ctx context.Context, cfg *config.Config) ([]service.DeliveryChannel, error) {
	if cfg.Firebase.CredentialsPath == "" && cfg.Firebase.ProjectID == "" {
		return nil, nil // Firebase is optional
	}

	ch, err := fcm.NewChannel(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase channel")
	}

	return []service.DeliveryChannel{ch}, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRecipientLocks,
			impl.NewImportService,
			impl.NewDispatchService,
			impl.NewDigestService,
			impl.NewCleanupService,
			impl.NewStatsService,
			impl.NewRecipientService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAdminAuth,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewHealthHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			scheduler.New,
			func(s *scheduler.Scheduler) handler.JobRunner { return s },
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				func(s *scheduler.Scheduler) delivery.Delivery { return s },
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
