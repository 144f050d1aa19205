package worker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/bus"
	"gamehub/internal/infra/metrics"
	mockRepo "gamehub/internal/mocks/repository"
	mockService "gamehub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// forwarderFixtures holds all test dependencies for forwarder tests.
type forwarderFixtures struct {
	txManager *mockRepo.MockOutboxTransactionManager
	factory   *mockRepo.MockOutboxRepositoryFactory
	outbox    *mockRepo.MockOutboxRepository
	metrics   *metrics.Collector
}

func createTestForwarderFixtures(t *testing.T) forwarderFixtures {
	fx := forwarderFixtures{
		txManager: mockRepo.NewMockOutboxTransactionManager(t),
		factory:   mockRepo.NewMockOutboxRepositoryFactory(t),
		outbox:    mockRepo.NewMockOutboxRepository(t),
		metrics:   metrics.NewCollector(),
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.OutboxRepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()
	fx.factory.EXPECT().NewOutboxRepository().Return(fx.outbox).Maybe()

	return fx
}

func (fx forwarderFixtures) forwarder(msgBus service.MessageBus, opts Options) *Forwarder {
	f := New(fx.txManager, msgBus, opts, fx.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.now = func() time.Time { return fixedNow }

	return f
}

func row(id int64, key string) *entity.OutboxMessage {
	return &entity.OutboxMessage{
		ID:      id,
		Topic:   "game-distributed",
		Key:     key,
		Payload: []byte(`{"gameId":1}`),
		Headers: map[string]string{"event-type": "game-distributed"},
		Status:  entity.OutboxStatusPending,
	}
}

func TestForwarder_ForwardOnce_SendsInOrder(t *testing.T) {
	fx := createTestForwarderFixtures(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	msgBus := bus.NewMemoryBus(1, logger)
	defer msgBus.Close()

	fx.outbox.EXPECT().
		FetchPending(mock.Anything, fixedNow, 10).
		Return([]*entity.OutboxMessage{row(1, "game-1"), row(2, "game-1")}, nil)
	fx.outbox.EXPECT().MarkSent(mock.Anything, int64(1), fixedNow).Return(nil)
	fx.outbox.EXPECT().MarkSent(mock.Anything, int64(2), fixedNow).Return(nil)
	fx.outbox.EXPECT().CountPending(mock.Anything).Return(int64(0), nil)

	sent, err := fx.forwarder(msgBus, Options{BatchSize: 10, MaxAttempts: 3, Backoff: time.Second}).
		ForwardOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	sub, err := msgBus.Subscribe(context.Background(), "game-distributed", "inspector")
	require.NoError(t, err)
	defer sub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	first, err := sub.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.Offset)
	assert.Equal(t, "game-distributed", first.Headers["event-type"])
	require.NoError(t, sub.Commit(ctx, first))
	second, err := sub.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Offset)

	assert.Equal(t, 1, testutil.CollectAndCount(fx.metrics, "gamehub_produced_records_total"))
}

func TestForwarder_ForwardOnce_FailureBlocksKey(t *testing.T) {
	fx := createTestForwarderFixtures(t)
	msgBus := mockService.NewMockMessageBus(t)

	msgBus.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("service.BusMessage")).
		RunAndReturn(func(_ context.Context, msgs ...service.BusMessage) error {
			if msgs[0].Key == "game-1" {
				return errors.New("broker unavailable")
			}

			return nil
		})

	failing := row(1, "game-1")
	failing.Attempts = 1
	fx.outbox.EXPECT().
		FetchPending(mock.Anything, fixedNow, 10).
		Return([]*entity.OutboxMessage{failing, row(2, "game-2"), row(3, "game-1")}, nil)
	// second failure: backoff doubles once
	fx.outbox.EXPECT().
		MarkFailed(mock.Anything, int64(1), "broker unavailable", fixedNow.Add(2*time.Second), false).
		Return(nil)
	fx.outbox.EXPECT().MarkSent(mock.Anything, int64(2), fixedNow).Return(nil)
	fx.outbox.EXPECT().CountPending(mock.Anything).Return(int64(2), nil)

	_, err := fx.forwarder(msgBus, Options{BatchSize: 10, MaxAttempts: 5, Backoff: time.Second}).
		ForwardOnce(context.Background())
	require.NoError(t, err)

	// row 3 shares the failed key and is left pending
	msgBus.AssertNumberOfCalls(t, "Publish", 2)
	fx.outbox.AssertNotCalled(t, "MarkSent", mock.Anything, int64(3), mock.Anything)
}

func TestForwarder_ForwardOnce_MarksDeadAfterMaxAttempts(t *testing.T) {
	fx := createTestForwarderFixtures(t)
	msgBus := mockService.NewMockMessageBus(t)

	msgBus.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("service.BusMessage")).
		Return(errors.New("topic missing"))

	exhausted := row(7, "game-7")
	exhausted.Attempts = 2
	fx.outbox.EXPECT().
		FetchPending(mock.Anything, fixedNow, 10).
		Return([]*entity.OutboxMessage{exhausted}, nil)
	fx.outbox.EXPECT().
		MarkFailed(mock.Anything, int64(7), "topic missing", mock.AnythingOfType("time.Time"), true).
		Return(nil)
	fx.outbox.EXPECT().CountPending(mock.Anything).Return(int64(0), nil)

	_, err := fx.forwarder(msgBus, Options{BatchSize: 10, MaxAttempts: 3, Backoff: time.Second}).
		ForwardOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.OutboxStatusDead, exhausted.Status)
}

func TestForwarder_ForwardOnce_StoreErrorRollsBack(t *testing.T) {
	fx := createTestForwarderFixtures(t)
	msgBus := mockService.NewMockMessageBus(t)

	fx.outbox.EXPECT().
		FetchPending(mock.Anything, fixedNow, 10).
		Return(nil, errors.New("connection refused"))

	_, err := fx.forwarder(msgBus, Options{BatchSize: 10}).ForwardOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch pending outbox rows")
}

func TestForwarder_ServeWakesOnNudge(t *testing.T) {
	fx := createTestForwarderFixtures(t)
	msgBus := mockService.NewMockMessageBus(t)
	passes := make(chan struct{}, 10)

	fx.outbox.EXPECT().
		FetchPending(mock.Anything, fixedNow, 10).
		RunAndReturn(func(context.Context, time.Time, int) ([]*entity.OutboxMessage, error) {
			passes <- struct{}{}

			return nil, nil
		})
	fx.outbox.EXPECT().CountPending(mock.Anything).Return(int64(0), nil)

	f := fx.forwarder(msgBus, Options{BatchSize: 10, PollInterval: time.Hour})
	served := make(chan error, 1)
	go func() { served <- f.Serve(context.Background()) }()

	// initial pass on start
	<-passes
	f.Nudge()
	select {
	case <-passes:
	case <-time.After(2 * time.Second):
		t.Fatal("nudge did not trigger a pass")
	}

	require.NoError(t, f.shutdown(context.Background()))
	require.NoError(t, <-served)
}

func TestForwarder_ShutdownWithoutServe(t *testing.T) {
	fx := createTestForwarderFixtures(t)
	f := fx.forwarder(mockService.NewMockMessageBus(t), Options{})

	assert.NoError(t, f.shutdown(context.Background()))
}

func TestForwarder_RetryDelay(t *testing.T) {
	f := &Forwarder{opts: Options{Backoff: time.Second}}

	assert.Equal(t, time.Second, f.retryDelay(1))
	assert.Equal(t, 2*time.Second, f.retryDelay(2))
	assert.Equal(t, 8*time.Second, f.retryDelay(4))
	assert.Equal(t, maxRetryDelay, f.retryDelay(30))
}

// memoryOutbox hands rows out the way the store does: due rows that head their key, in id order.
type memoryOutbox struct {
	mu   sync.Mutex
	rows []*entity.OutboxMessage
}

func (o *memoryOutbox) Execute(_ context.Context, fn func(repository.OutboxRepositoryFactory) error) error {
	return fn(o)
}

func (o *memoryOutbox) NewOutboxRepository() repository.OutboxRepository {
	return o
}

func (o *memoryOutbox) Enqueue(_ context.Context, msg *entity.OutboxMessage) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	msg.ID = int64(len(o.rows) + 1)
	msg.Status = entity.OutboxStatusPending
	o.rows = append(o.rows, msg)

	return nil
}

func (o *memoryOutbox) FetchPending(_ context.Context, now time.Time, limit int) ([]*entity.OutboxMessage, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var due []*entity.OutboxMessage
	heads := make(map[string]struct{})
	for _, r := range o.rows {
		if r.Status != entity.OutboxStatusPending {
			continue
		}
		if _, ok := heads[r.Key]; ok {
			continue
		}
		heads[r.Key] = struct{}{}
		if r.NextAttemptAt.After(now) || len(due) == limit {
			continue
		}
		c := *r
		due = append(due, &c)
	}

	return due, nil
}

func (o *memoryOutbox) find(id int64) *entity.OutboxMessage {
	i := slices.IndexFunc(o.rows, func(r *entity.OutboxMessage) bool { return r.ID == id })

	return o.rows[i]
}

func (o *memoryOutbox) MarkSent(_ context.Context, id int64, _ time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.find(id)
	r.Status = entity.OutboxStatusSent
	r.Attempts++

	return nil
}

func (o *memoryOutbox) MarkFailed(_ context.Context, id int64, lastError string, next time.Time, dead bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.find(id)
	r.Attempts++
	r.LastError = lastError
	r.NextAttemptAt = next
	if dead {
		r.Status = entity.OutboxStatusDead
	}

	return nil
}

func (o *memoryOutbox) CountPending(context.Context) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var n int64
	for _, r := range o.rows {
		if r.Status == entity.OutboxStatusPending {
			n++
		}
	}

	return n, nil
}

func TestForwarder_KeyOrderHoldsWhileOlderRowBacksOff(t *testing.T) {
	store := &memoryOutbox{}
	for _, key := range []string{"game-1", "game-1", "game-2"} {
		msg := &entity.OutboxMessage{Topic: "patch-published", Key: key, NextAttemptAt: fixedNow}
		require.NoError(t, store.Enqueue(context.Background(), msg))
		msg.Payload = []byte(fmt.Sprintf(`{"seq":%d}`, msg.ID))
	}

	var published []string
	failed := false
	msgBus := mockService.NewMockMessageBus(t)
	msgBus.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("service.BusMessage")).
		RunAndReturn(func(_ context.Context, msgs ...service.BusMessage) error {
			if string(msgs[0].Value) == `{"seq":1}` && !failed {
				failed = true

				return errors.New("broker unavailable")
			}
			published = append(published, string(msgs[0].Value))

			return nil
		})

	clock := fixedNow
	f := New(store, msgBus, Options{BatchSize: 10, MaxAttempts: 5, Backoff: 2 * time.Second}, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.now = func() time.Time { return clock }

	// row 1 fails and backs off; the other key is unaffected
	sent, err := f.ForwardOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	// row 2 waits behind row 1 even though it is due itself
	clock = fixedNow.Add(100 * time.Millisecond)
	sent, err = f.ForwardOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)

	clock = fixedNow.Add(3 * time.Second)
	f.drain(context.Background())

	assert.Equal(t, []string{`{"seq":3}`, `{"seq":1}`, `{"seq":2}`}, published)
	pending, err := store.CountPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, pending)
}
