package service

import (
	"context"

	"gamehub/internal/domain/event"
)

// EventEmitter hands an event to the bus, directly or through the outbox.
type EventEmitter interface {
	Emit(ctx context.Context, key string, e event.Event) error
}
