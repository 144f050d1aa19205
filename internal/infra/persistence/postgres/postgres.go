package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gamehub/config"
	"gamehub/internal/domain/lifecycle"
	"gamehub/internal/errors"
	"gamehub/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval   = 5 * time.Second
	poolWaitWarnAverage = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector `optional:"true"`
}

// New opens the service store. The schema is migrated on start when config.Migrate is set.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// every write path runs inside txManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config, params.Metrics),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := params.Metrics.WatchDB(sqlDB, params.Config.Env.ServiceName); err != nil {
		return nil, errors.Wrap(err, "failed to export pool statistics")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Migrate {
				if err := runMigrations(ctx, sqlDB, params.Config.Env.ServiceName, params.Logger); err != nil {
					return err
				}
			}

			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPool warns when listeners and the forwarder queue for connections.
// The raw counters are exported through metrics; this only flags sustained waits.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		if waits := cur.WaitCount - prev.WaitCount; waits > 0 {
			avg := (cur.WaitDuration - prev.WaitDuration) / time.Duration(waits)
			level := slog.LevelDebug
			if avg >= poolWaitWarnAverage {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "[DB] Connection pool saturated",
				slog.Int64("waits", waits),
				slog.Duration("avg_wait", avg),
				slog.Int("in_use", cur.InUse),
				slog.Int("max_open", cur.MaxOpenConnections),
			)
		}
		prev = cur
	}
}
