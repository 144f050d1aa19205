// Package producer provides typed senders, one per event, on top of an EventEmitter.
package producer

import (
	"context"
	"log/slog"

	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
)

type base struct {
	emitter service.EventEmitter
	logger  *slog.Logger
}

func (b base) send(ctx context.Context, key string, e event.Event) error {
	if key == "" {
		key = event.KeyOf(e)
	}

	if err := b.emitter.Emit(ctx, key, e); err != nil {
		b.logger.Error("[Producer] Failed to send event",
			slog.String("topic", e.Topic()),
			slog.String("key", key),
			slog.Any("error", err),
		)

		return err
	}

	b.logger.Debug("[Producer] Event sent",
		slog.String("topic", e.Topic()),
		slog.String("key", key),
	)

	return nil
}

// SendExampleEvent emits a diagnostic message under a random key.
func SendExampleEvent(ctx context.Context, emitter service.EventEmitter, logger *slog.Logger, payload string) error {
	return base{emitter: emitter, logger: logger}.send(ctx, "", &event.ExampleEvent{Payload: payload})
}
