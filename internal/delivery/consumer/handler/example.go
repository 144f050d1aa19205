package handler

import (
	"context"
	"log/slog"

	"gamehub/internal/delivery/consumer"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/event"
)

// exampleListener logs diagnostic messages sent with the send command.
func exampleListener(service string, logger *slog.Logger) consumer.Listener {
	return consumer.Bind(consumer.ListenerID(service, "ExampleEvent"), event.TopicExampleEvent,
		func(ctx context.Context, e *event.ExampleEvent) error {
			deliverycontext.GetLoggerOrDefault(ctx, logger).Info("[Consumer] Example event received",
				slog.String("payload", e.Payload),
			)

			return nil
		})
}
