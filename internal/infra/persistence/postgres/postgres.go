package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/lifecycle"
	"eventradar/internal/domain/repository"
	"eventradar/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the event store, pings it on start and migrates the schema when enabled.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single statement, so the implicit per-statement transaction is redundant.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watcher := &poolWatcher{
		logger:    params.Logger.With(slog.String("component", "postgres")),
		db:        sqlDB,
		interval:  params.Config.Database.PoolMonitorInterval,
		threshold: params.Config.Database.PoolWaitThreshold,
	}
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(errors.Join(repository.ErrStorageUnavailable, err), "failed to ping PostgreSQL")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}

			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher samples sql.DB stats and reports callers that had to wait for a connection.
type poolWatcher struct {
	logger    *slog.Logger
	db        *sql.DB
	interval  time.Duration
	threshold time.Duration
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	prev := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.db.Stats()
			w.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

func (w *poolWatcher) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= w.threshold {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Connection pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpen", cur.MaxOpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
