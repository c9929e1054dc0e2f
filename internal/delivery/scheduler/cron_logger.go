package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = (*cronLogger)(nil)

func newCronLogger(logger *slog.Logger) *cronLogger {
	return &cronLogger{logger: logger.With(slog.String("component", "cron"))}
}

// Info logs routine cron activity at debug level.
func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
