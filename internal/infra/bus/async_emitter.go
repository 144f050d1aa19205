package bus

import (
	"context"
	"log/slog"
	"sync"

	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/metrics"
)

// AsyncEmitter appends events straight to the bus on a background goroutine.
// Emit returns once the event is encoded; the outcome is only logged.
type AsyncEmitter struct {
	bus      service.MessageBus
	producer string
	metrics  *metrics.Collector
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewAsyncEmitter tags every record with producer.
func NewAsyncEmitter(bus service.MessageBus, producer string, collector *metrics.Collector, logger *slog.Logger) *AsyncEmitter {
	return &AsyncEmitter{
		bus:      bus,
		producer: producer,
		metrics:  collector,
		logger:   logger,
	}
}

func (e *AsyncEmitter) Emit(ctx context.Context, key string, evt event.Event) error {
	payload, headers, err := event.EncodeContext(ctx, evt, e.producer)
	if err != nil {
		return err
	}

	msg := service.BusMessage{
		Topic:   evt.Topic(),
		Key:     key,
		Value:   payload,
		Headers: headers,
	}
	sendCtx := context.WithoutCancel(ctx)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		if err := e.bus.Publish(sendCtx, msg); err != nil {
			e.metrics.RecordProduced(msg.Topic, metrics.OutcomeFailed)
			e.logger.ErrorContext(sendCtx, "[Producer] Failed to send event",
				slog.String("topic", msg.Topic),
				slog.String("key", msg.Key),
				slog.Any("error", err),
			)

			return
		}

		e.metrics.RecordProduced(msg.Topic, metrics.OutcomeSent)
		e.logger.InfoContext(sendCtx, "[Producer] Event sent",
			slog.String("topic", msg.Topic),
			slog.String("key", msg.Key),
		)
	}()

	return nil
}

// Wait blocks until every emitted event has been handed to the bus.
func (e *AsyncEmitter) Wait() {
	e.wg.Wait()
}
