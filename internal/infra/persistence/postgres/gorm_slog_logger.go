package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventradar/config"
	"eventradar/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger routes gorm's statement log into slog. Failed statements log at
// error level, slow ones at warn, and everything else only in debug mode.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	now           func() time.Time
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        base.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: cfg.Database.SlowQueryThreshold,
		now:           time.Now,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < enabledAt {
		return
	}
	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := l.now().Sub(begin)
	level, msg, extra := l.classify(elapsed, err)
	if msg == "" {
		return
	}

	stmt, rows := sqlAndRows()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", stmt),
	}, extra...)
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify returns an empty message when the statement should not be logged.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, []slog.Attr) {
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		return slog.LevelError, "Query failed", []slog.Attr{slog.String("error", err.Error())}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "Slow query", []slog.Attr{slog.Duration("threshold", l.slowThreshold)}
	case l.level >= logger.Info:
		return slog.LevelDebug, "Query", nil
	default:
		return 0, "", nil
	}
}
