package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gamehub/internal/domain/event"
	"gamehub/internal/infra/bus"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
)

func runCreateTopics(ctx context.Context, brokers []string, partitions, replicationFactor int, out io.Writer, logger *slog.Logger) error {
	if len(brokers) == 0 {
		return errors.New("at least one broker is required")
	}

	if err := bus.CreateKafkaTopics(ctx, brokers[0], partitions, replicationFactor, logger, bus.AllTopics()...); err != nil {
		return err
	}

	printTopics(out)

	return nil
}

// printTopics lists the topic table with who produces and consumes each topic.
func printTopics(out io.Writer) {
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("TOPIC", "PRODUCER", "CONSUMER", "DESCRIPTION")
	for _, t := range event.Topics {
		table.AddRow(t.Name, t.Producer, t.Consumer, t.Description)
	}
	fmt.Fprintln(out, table)
}
