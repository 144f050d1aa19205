package repository

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"
)

// OutboxRepository stages events and tracks their forwarding.
type OutboxRepository interface {
	// Enqueue stages a message; it becomes visible when the surrounding transaction commits.
	Enqueue(ctx context.Context, msg *entity.OutboxMessage) error
	// FetchPending locks up to limit due messages in id order. A message is only due once
	// every older message of its key has left the pending state. Rows locked by another
	// forwarder are skipped.
	FetchPending(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxMessage, error)
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
	// MarkFailed records a failed attempt and schedules the next one, or marks the row dead.
	MarkFailed(ctx context.Context, id int64, lastError string, nextAttemptAt time.Time, dead bool) error
	CountPending(ctx context.Context) (int64, error)
}
