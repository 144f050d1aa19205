// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gamehub/internal/domain/service"
)

// DistributorTransactionManager runs distributor work in one database transaction.
// If fn returns an error the transaction is rolled back, otherwise it is committed.
type DistributorTransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory DistributorRepositoryFactory) error) error
}

// DistributorRepositoryFactory provides repositories bound to one transaction.
type DistributorRepositoryFactory interface {
	NewDistributorRepository() DistributorRepository
	NewDistributedGameRepository() DistributedGameRepository
	NewPlayerRepository() PlayerRepository
	NewOwnedGameRepository() OwnedGameRepository
	NewReviewRepository() ReviewRepository

	// NewEventEmitter returns an emitter that stages events in this transaction's outbox.
	NewEventEmitter() service.EventEmitter
}

// PublisherTransactionManager runs publisher work in one database transaction.
type PublisherTransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory PublisherRepositoryFactory) error) error
}

// PublisherRepositoryFactory provides repositories bound to one transaction.
type PublisherRepositoryFactory interface {
	NewPublisherRepository() PublisherRepository
	NewGameRepository() GameRepository
	NewPatchRepository() PatchRepository
	NewReviewMirrorRepository() ReviewMirrorRepository
	NewCrashReportRepository() CrashReportRepository

	// NewEventEmitter returns an emitter that stages events in this transaction's outbox.
	NewEventEmitter() service.EventEmitter
}

// OutboxTransactionManager runs outbox forwarding in one database transaction.
type OutboxTransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory OutboxRepositoryFactory) error) error
}

// OutboxRepositoryFactory provides the outbox repository bound to one transaction.
type OutboxRepositoryFactory interface {
	NewOutboxRepository() OutboxRepository
}
