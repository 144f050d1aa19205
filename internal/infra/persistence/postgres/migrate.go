package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"gamehub/internal/infra/persistence/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

const migrationsTable = "schema_migrations"

// runMigrations applies the embedded schema of service. It works on a dedicated connection
// so closing the migrator leaves the pool open.
func runMigrations(ctx context.Context, sqlDB *sql.DB, service string, logger *slog.Logger) error {
	files, err := migrations.ForService(service)
	if err != nil {
		return err
	}

	source, err := iofs.New(files, ".")
	if err != nil {
		return errors.Wrap(err, "failed to open migration source")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, service, driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "failed to migrate %s schema", service)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "failed to read schema version")
	}
	logger.Info("Database schema up to date",
		slog.String("service", service),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
