package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/bus"

	"github.com/pkg/errors"
)

const producerName = "busctl"

func newKafkaBus(brokers []string, logger *slog.Logger) (service.MessageBus, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}

	// partitions only matter when topics are created
	return bus.NewKafkaBus(brokers, 1, 1, logger)
}

// runProduce validates payload as an event of topic and appends it under key,
// or under the key of the aggregate it names when key is empty.
func runProduce(ctx context.Context, msgBus service.MessageBus, topic, key, payload string, out io.Writer) error {
	evt, err := event.Decode(topic, []byte(payload))
	if err != nil {
		return err
	}

	value, headers, err := event.Encode(evt, producerName)
	if err != nil {
		return err
	}
	if key == "" {
		key = event.KeyOf(evt)
	}

	if err := msgBus.Publish(ctx, service.BusMessage{
		Topic:   topic,
		Key:     key,
		Value:   value,
		Headers: headers,
	}); err != nil {
		return errors.Wrapf(err, "failed to append to %s", topic)
	}

	fmt.Fprintf(out, "Sent %s key=%s\n", topic, key)

	return nil
}
