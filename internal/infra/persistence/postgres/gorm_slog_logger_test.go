package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func query() (string, int64) {
	return `SELECT * FROM "players"`, 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "fast query hidden", elapsed: time.Millisecond},
		{name: "fast query in debug", debug: true, elapsed: time.Millisecond, want: "[DB] Query"},
		{name: "slow query", elapsed: time.Second, want: "[DB] Slow query"},
		{name: "failure", elapsed: time.Millisecond, err: errors.New("deadlock detected"), want: "[DB] Query failed"},
		{name: "missing row hidden", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newGormSlogLogger(base, cfg, nil)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "rows=3")
		})
	}
}

func TestGormSlogLogger_UsesScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("listener", "distributorServicePurchaseGameConsumer")))

	l := newGormSlogLogger(base, &config.Config{}, nil)
	l.Trace(ctx, time.Now(), query, errors.New("boom"))

	assert.Contains(t, buf.String(), "listener=distributorServicePurchaseGameConsumer")
}

func TestGormSlogLogger_CountsSlowQueries(t *testing.T) {
	collector := metrics.NewCollector()
	l := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{}, collector)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	l.Trace(context.Background(), time.Now(), query, nil)

	expected := `
# HELP gamehub_slow_queries_total Store queries slower than the slow query threshold.
# TYPE gamehub_slow_queries_total counter
gamehub_slow_queries_total 1
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "gamehub_slow_queries_total"))
}
