package postgres

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"

	"github.com/pkg/errors"
)

// outboxEmitter stages events in the outbox table of the transaction it was created from.
// The forwarder appends them to the bus once the transaction commits.
type outboxEmitter struct {
	outbox   repository.OutboxRepository
	producer string
	now      func() time.Time
}

// NewOutboxEmitter returns an emitter that writes through outbox, tagging records with producer.
func NewOutboxEmitter(outbox repository.OutboxRepository, producer string) service.EventEmitter {
	return &outboxEmitter{
		outbox:   outbox,
		producer: producer,
		now:      time.Now,
	}
}

func (e *outboxEmitter) Emit(ctx context.Context, key string, evt event.Event) error {
	payload, headers, err := event.EncodeContext(ctx, evt, e.producer)
	if err != nil {
		return err
	}

	now := e.now().UTC()
	msg := &entity.OutboxMessage{
		Topic:         evt.Topic(),
		Key:           key,
		Payload:       payload,
		Headers:       headers,
		Status:        entity.OutboxStatusPending,
		NextAttemptAt: now,
		CreatedAt:     now,
	}
	if err := e.outbox.Enqueue(ctx, msg); err != nil {
		return errors.Wrapf(err, "stage %s", evt.Topic())
	}

	return nil
}
