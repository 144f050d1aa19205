// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gamehub/config"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"

	"gorm.io/gorm"
)

// executeInTx runs fn within a single database transaction.
// If fn returns an error the transaction is rolled back, otherwise it is committed.
// Failures a later attempt may get past are marked retryable.
func executeInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.NewRetryable(errors.Wrap(domainerrors.ErrTransactionFailed, "failed to begin transaction: "+tx.Error.Error()))
	}

	// Roll back on panic, then let the caller's recovery handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// the original error matters more to the caller than the rollback failure
			return markTransient(errors.Wrapf(err, "transaction rollback failed: %v", rbErr))
		}

		return markTransient(err)
	}

	if err := tx.Commit().Error; err != nil {
		return errors.NewRetryable(errors.Wrap(domainerrors.ErrTransactionFailed, "failed to commit transaction: "+err.Error()))
	}

	return nil
}

// --- Distributor ---

type gormDistributorTransactionManager struct {
	db       *gorm.DB
	producer string
}

// gormDistributorRepositoryFactory hands out repositories bound to one transaction.
type gormDistributorRepositoryFactory struct {
	tx       *gorm.DB
	producer string
}

// NewDistributorTransactionManager is the constructor for the distributor store's transaction manager.
func NewDistributorTransactionManager(db *gorm.DB, cfg *config.Config) repository.DistributorTransactionManager {
	return &gormDistributorTransactionManager{db: db, producer: cfg.Env.ServiceName}
}

func (tm *gormDistributorTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.DistributorRepositoryFactory) error) error {
	return executeInTx(ctx, tm.db, func(tx *gorm.DB) error {
		return fn(&gormDistributorRepositoryFactory{tx: tx, producer: tm.producer})
	})
}

func (f *gormDistributorRepositoryFactory) NewDistributorRepository() repository.DistributorRepository {
	return NewDistributorRepository(f.tx)
}

func (f *gormDistributorRepositoryFactory) NewDistributedGameRepository() repository.DistributedGameRepository {
	return NewDistributedGameRepository(f.tx)
}

func (f *gormDistributorRepositoryFactory) NewPlayerRepository() repository.PlayerRepository {
	return NewPlayerRepository(f.tx)
}

func (f *gormDistributorRepositoryFactory) NewOwnedGameRepository() repository.OwnedGameRepository {
	return NewOwnedGameRepository(f.tx)
}

func (f *gormDistributorRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *gormDistributorRepositoryFactory) NewEventEmitter() service.EventEmitter {
	return NewOutboxEmitter(NewOutboxRepository(f.tx), f.producer)
}

// --- Publisher ---

type gormPublisherTransactionManager struct {
	db       *gorm.DB
	producer string
}

type gormPublisherRepositoryFactory struct {
	tx       *gorm.DB
	producer string
}

// NewPublisherTransactionManager is the constructor for the publisher store's transaction manager.
func NewPublisherTransactionManager(db *gorm.DB, cfg *config.Config) repository.PublisherTransactionManager {
	return &gormPublisherTransactionManager{db: db, producer: cfg.Env.ServiceName}
}

func (tm *gormPublisherTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.PublisherRepositoryFactory) error) error {
	return executeInTx(ctx, tm.db, func(tx *gorm.DB) error {
		return fn(&gormPublisherRepositoryFactory{tx: tx, producer: tm.producer})
	})
}

func (f *gormPublisherRepositoryFactory) NewPublisherRepository() repository.PublisherRepository {
	return NewPublisherRepository(f.tx)
}

func (f *gormPublisherRepositoryFactory) NewGameRepository() repository.GameRepository {
	return NewGameRepository(f.tx)
}

func (f *gormPublisherRepositoryFactory) NewPatchRepository() repository.PatchRepository {
	return NewPatchRepository(f.tx)
}

func (f *gormPublisherRepositoryFactory) NewReviewMirrorRepository() repository.ReviewMirrorRepository {
	return NewReviewMirrorRepository(f.tx)
}

func (f *gormPublisherRepositoryFactory) NewCrashReportRepository() repository.CrashReportRepository {
	return NewCrashReportRepository(f.tx)
}

func (f *gormPublisherRepositoryFactory) NewEventEmitter() service.EventEmitter {
	return NewOutboxEmitter(NewOutboxRepository(f.tx), f.producer)
}

// --- Outbox ---

type gormOutboxTransactionManager struct {
	db *gorm.DB
}

type gormOutboxRepositoryFactory struct {
	tx *gorm.DB
}

// NewOutboxTransactionManager is the constructor for the forwarder's transaction manager.
func NewOutboxTransactionManager(db *gorm.DB) repository.OutboxTransactionManager {
	return &gormOutboxTransactionManager{db: db}
}

func (tm *gormOutboxTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.OutboxRepositoryFactory) error) error {
	return executeInTx(ctx, tm.db, func(tx *gorm.DB) error {
		return fn(&gormOutboxRepositoryFactory{tx: tx})
	})
}

func (f *gormOutboxRepositoryFactory) NewOutboxRepository() repository.OutboxRepository {
	return NewOutboxRepository(f.tx)
}
