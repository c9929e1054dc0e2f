package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"eventradar/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 100 * time.Millisecond}}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l, _ := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	l.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	return l
}

func TestGormSlogLogger_Trace(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	stmt := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed statement", err: errors.New("boom"), elapsed: time.Millisecond, want: `"msg":"Query failed"`},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, elapsed: time.Millisecond, want: ""},
		{name: "slow statement", elapsed: 150 * time.Millisecond, want: `"msg":"Slow query"`},
		{name: "fast statement outside debug", elapsed: time.Millisecond, want: ""},
		{name: "fast statement in debug", debug: true, elapsed: time.Millisecond, want: `"msg":"Query"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)

			l.Trace(context.Background(), now.Add(-tt.elapsed), stmt, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
		})
	}
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Time{}, func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Error(context.Background(), "migrate %s", "events")

	assert.Empty(t, buf.String())
}

func TestPoolWatcher_Observe(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{
		logger:    slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		threshold: 50 * time.Millisecond,
	}
	ctx := context.Background()

	w.observe(ctx, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	w.observe(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)

	buf.Reset()
	w.observe(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 80 * time.Millisecond})
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)
}
