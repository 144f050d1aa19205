package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gamehub/internal/domain/service"

	"github.com/pkg/errors"
)

// runTail prints the records of topic read as group, committing each one.
// It stops after limit records, or when ctx is done if limit is 0.
func runTail(ctx context.Context, msgBus service.MessageBus, topic, group string, limit int, out io.Writer) error {
	sub, err := msgBus.Subscribe(ctx, topic, group)
	if err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", topic)
	}
	defer sub.Close()

	for read := 0; limit <= 0 || read < limit; read++ {
		msg, err := sub.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch record")
		}

		fmt.Fprintln(out, formatRecord(msg))

		if err := sub.Commit(ctx, msg); err != nil {
			return errors.Wrap(err, "failed to commit record")
		}
	}

	return nil
}

func formatRecord(msg service.BusMessage) string {
	headers := make([]string, 0, len(msg.Headers))
	for _, k := range slices.Sorted(maps.Keys(msg.Headers)) {
		headers = append(headers, k+"="+msg.Headers[k])
	}

	return fmt.Sprintf("%s[%d]@%d key=%s headers={%s} %s",
		msg.Topic, msg.Partition, msg.Offset, msg.Key, strings.Join(headers, ","), msg.Value)
}
