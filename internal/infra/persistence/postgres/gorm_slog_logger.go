package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/errors"
	"gamehub/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to the logger of the record or request being handled,
// so a query log line carries its listener, offset and correlation ID.
type gormSlogLogger struct {
	logger  *slog.Logger
	metrics *metrics.Collector
	level   logger.LogLevel
	slow    time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config, collector *metrics.Collector) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:  base,
		metrics: collector,
		level:   level,
		slow:    slowQueryThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	l.scoped(ctx).LogAttrs(ctx, level, "[DB] "+fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slow > 0 && elapsed > l.slow
	if slow {
		l.metrics.RecordSlowQuery()
	}

	var (
		level slog.Level
		msg   string
	)
	switch {
	// a missing row is an answer, the repositories map it to ErrNotFound
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg = slog.LevelError, "[DB] Query failed"
	case slow && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "[DB] Slow query"
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "[DB] Query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) scoped(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
