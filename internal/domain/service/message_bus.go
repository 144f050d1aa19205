package service

import (
	"context"
	"time"
)

// BusMessage is one record of a topic partition.
type BusMessage struct {
	Topic     string
	Key       string
	Value     []byte
	Headers   map[string]string
	Partition int
	Offset    int64
	Time      time.Time
}

// MessageBus is a partitioned, keyed, at-least-once log.
// Records with the same key land on the same partition and keep their order.
type MessageBus interface {
	// Publish appends messages and returns once the bus acknowledged them.
	Publish(ctx context.Context, msgs ...BusMessage) error

	// Subscribe joins group on topic. Members of a group share the partitions.
	Subscribe(ctx context.Context, topic, group string) (Subscription, error)

	// EnsureTopics creates missing topics where the bus supports it.
	EnsureTopics(ctx context.Context, topics ...string) error

	Close() error
}

// Subscription delivers records of the partitions assigned to one group member.
// At most one uncommitted record per partition is handed out at a time.
type Subscription interface {
	// Fetch blocks until a record is available or ctx is done.
	Fetch(ctx context.Context) (BusMessage, error)

	// Commit advances the group offset past msg.
	Commit(ctx context.Context, msg BusMessage) error

	Close() error
}
