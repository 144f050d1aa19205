package bus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamehub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryBus(t *testing.T, partitions int) service.MessageBus {
	t.Helper()
	b := NewMemoryBus(partitions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = b.Close() })

	return b
}

func fetchWithin(t *testing.T, sub service.Subscription, d time.Duration) (service.BusMessage, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	return sub.Fetch(ctx)
}

func TestMemoryBus_SameKeyKeepsOrderOnOnePartition(t *testing.T) {
	b := newTestMemoryBus(t, 4)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx,
		service.BusMessage{Topic: "purchase-game", Key: "player-1", Value: []byte("1")},
		service.BusMessage{Topic: "purchase-game", Key: "player-1", Value: []byte("2")},
		service.BusMessage{Topic: "purchase-game", Key: "player-1", Value: []byte("3")},
	))

	sub, err := b.Subscribe(ctx, "purchase-game", "distributor")
	require.NoError(t, err)
	defer sub.Close()

	var values []string
	var partition int
	for i := range 3 {
		msg, err := fetchWithin(t, sub, time.Second)
		require.NoError(t, err)
		if i == 0 {
			partition = msg.Partition
		}
		assert.Equal(t, partition, msg.Partition)
		assert.Equal(t, int64(i), msg.Offset)
		values = append(values, string(msg.Value))
		require.NoError(t, sub.Commit(ctx, msg))
	}

	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestMemoryBus_OneUncommittedRecordPerPartition(t *testing.T) {
	b := newTestMemoryBus(t, 1)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx,
		service.BusMessage{Topic: "t", Key: "a", Value: []byte("first")},
		service.BusMessage{Topic: "t", Key: "a", Value: []byte("second")},
	))

	first, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	defer first.Close()
	second, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	defer second.Close()

	msg, err := fetchWithin(t, first, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "first", string(msg.Value))

	_, err = fetchWithin(t, second, 50*time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Commit(ctx, msg))

	next, err := fetchWithin(t, second, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "second", string(next.Value))
}

func TestMemoryBus_GroupsAreIndependent(t *testing.T) {
	b := newTestMemoryBus(t, 2)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx, service.BusMessage{Topic: "game-published", Key: "game-1", Value: []byte("x")}))

	for _, group := range []string{"distributor", "audit"} {
		sub, err := b.Subscribe(ctx, "game-published", group)
		require.NoError(t, err)

		msg, err := fetchWithin(t, sub, time.Second)
		require.NoError(t, err, group)
		assert.Equal(t, "x", string(msg.Value))
		require.NoError(t, sub.Commit(ctx, msg))
		require.NoError(t, sub.Close())
	}
}

func TestMemoryBus_CloseRedeliversUncommitted(t *testing.T) {
	b := newTestMemoryBus(t, 1)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx, service.BusMessage{Topic: "t", Key: "k", Value: []byte("v")}))

	sub, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	msg, err := fetchWithin(t, sub, time.Second)
	require.NoError(t, err)
	require.NoError(t, sub.Close())

	again, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	defer again.Close()

	redelivered, err := fetchWithin(t, again, time.Second)
	require.NoError(t, err)
	assert.Equal(t, msg.Offset, redelivered.Offset)
	assert.Equal(t, "v", string(redelivered.Value))
}

func TestMemoryBus_FetchWakesOnPublish(t *testing.T) {
	b := newTestMemoryBus(t, 1)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	defer sub.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = b.Publish(ctx, service.BusMessage{Topic: "t", Key: "k", Value: []byte("late"), Headers: map[string]string{"event-type": "t"}})
	}()

	msg, err := fetchWithin(t, sub, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "late", string(msg.Value))
	assert.Equal(t, "t", msg.Headers["event-type"])
	assert.False(t, msg.Time.IsZero())
}

func TestMemoryBus_CommitRejectsForeignRecord(t *testing.T) {
	b := newTestMemoryBus(t, 1)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	defer sub.Close()

	err = sub.Commit(ctx, service.BusMessage{Topic: "t", Partition: 0, Offset: 3})
	assert.Error(t, err)
}

func TestMemoryBus_ClosedBus(t *testing.T) {
	b := newTestMemoryBus(t, 1)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "t", "g")
	require.NoError(t, err)
	require.NoError(t, b.Close())

	_, err = fetchWithin(t, sub, time.Second)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, b.Publish(ctx, service.BusMessage{Topic: "t"}), ErrClosed)
}

func TestPartitionFor(t *testing.T) {
	assert.Equal(t, 0, partitionFor("anything", 1))
	assert.Equal(t, partitionFor("player-7", 5), partitionFor("player-7", 5))

	seen := map[int]bool{}
	for _, key := range []string{"player-1", "player-2", "player-3", "player-4", "player-5", "player-6", "player-7", "player-8"} {
		p := partitionFor(key, 3)
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 3)
		seen[p] = true
	}
	assert.Greater(t, len(seen), 1)
}
