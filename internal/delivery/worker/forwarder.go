// Package worker forwards staged outbox events to the message bus.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gamehub/config"
	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/lifecycle"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxRetryDelay = 10 * time.Minute

// Options controls polling and retry of the forwarder.
type Options struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	Backoff      time.Duration
}

// Forwarder appends pending outbox rows to the bus, in id order, and marks them sent.
// Several forwarders may run against one store; rows are claimed with SKIP LOCKED.
type Forwarder struct {
	txManager repository.OutboxTransactionManager
	bus       service.MessageBus
	opts      Options
	metrics   *metrics.Collector
	logger    *slog.Logger
	now       func() time.Time

	nudge    chan struct{}
	stop     chan struct{}
	done     chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// ForwarderParams holds dependencies for the outbox forwarder, injected by Fx
type ForwarderParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	TxManager repository.OutboxTransactionManager
	Bus       service.MessageBus
	Metrics   *metrics.Collector `optional:"true"`
}

// NewForwarder creates the outbox forwarder; it runs from Serve until the app stops.
func NewForwarder(params ForwarderParams) *Forwarder {
	opts := Options{}
	if o := params.Cfg.Outbox; o != nil {
		opts = Options{
			PollInterval: o.PollInterval,
			BatchSize:    o.BatchSize,
			MaxAttempts:  o.MaxAttempts,
			Backoff:      o.Backoff,
		}
	}

	f := New(params.TxManager, params.Bus, opts, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: f.shutdown,
	})

	return f
}

// New builds a Forwarder. metrics may be nil.
func New(
	txManager repository.OutboxTransactionManager,
	bus service.MessageBus,
	opts Options,
	collector *metrics.Collector,
	logger *slog.Logger,
) *Forwarder {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}

	return &Forwarder{
		txManager: txManager,
		bus:       bus,
		opts:      opts,
		metrics:   collector,
		logger:    logger,
		now:       time.Now,
		nudge:     make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Nudge asks for a forwarding pass without waiting for the next poll.
func (f *Forwarder) Nudge() {
	select {
	case f.nudge <- struct{}{}:
	default:
	}
}

// Serve polls the outbox until the forwarder is shut down.
func (f *Forwarder) Serve(ctx context.Context) error {
	if !f.started.CompareAndSwap(false, true) {
		return errors.New("outbox forwarder already running")
	}
	defer close(f.done)

	f.logger.Info("[Outbox] Forwarder started",
		slog.Duration("poll_interval", f.opts.PollInterval),
		slog.Int("batch_size", f.opts.BatchSize),
	)

	ticker := time.NewTicker(f.opts.PollInterval)
	defer ticker.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-f.stop:
			cancel()
		case <-runCtx.Done():
		}
	}()

	for {
		f.drain(runCtx)

		select {
		case <-runCtx.Done():
			f.logger.Info("[Outbox] Forwarder stopped")

			return nil
		case <-ticker.C:
		case <-f.nudge:
		}
	}
}

// drain forwards batches while they make progress. A pass sends at most one row per key,
// so the next row of a key is picked up by the following pass.
func (f *Forwarder) drain(ctx context.Context) {
	for ctx.Err() == nil {
		sent, err := f.ForwardOnce(ctx)
		if err != nil {
			if ctx.Err() == nil {
				f.logger.Error("[Outbox] Forwarding pass failed", slog.Any("error", err))
			}

			return
		}
		if sent == 0 {
			return
		}
	}
}

// ForwardOnce sends one batch of due rows and returns how many it sent.
// The store only hands out the oldest pending row of each key; once a row fails,
// any later row of its key in the batch is left pending as well.
func (f *Forwarder) ForwardOnce(ctx context.Context) (int, error) {
	var sent int

	err := f.txManager.Execute(ctx, func(repoFactory repository.OutboxRepositoryFactory) error {
		outbox := repoFactory.NewOutboxRepository()

		rows, err := outbox.FetchPending(ctx, f.now().UTC(), f.opts.BatchSize)
		if err != nil {
			return errors.Wrap(err, "failed to fetch pending outbox rows")
		}

		blocked := make(map[string]struct{})
		for _, row := range rows {
			if _, ok := blocked[row.Key]; ok {
				continue
			}

			if err := f.send(ctx, outbox, row); err != nil {
				return err
			}
			if row.Status != entity.OutboxStatusSent {
				blocked[row.Key] = struct{}{}

				continue
			}
			sent++
		}

		pending, err := outbox.CountPending(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count pending outbox rows")
		}
		f.metrics.SetOutboxPending(pending)

		return nil
	})

	return sent, err
}

// send publishes one row and records the outcome on it. Only store failures are returned.
func (f *Forwarder) send(ctx context.Context, outbox repository.OutboxRepository, row *entity.OutboxMessage) error {
	logger := f.logger.With(
		slog.Int64("outbox_id", row.ID),
		slog.String("topic", row.Topic),
		slog.String("key", row.Key),
	)

	pubErr := f.bus.Publish(ctx, service.BusMessage{
		Topic:   row.Topic,
		Key:     row.Key,
		Value:   row.Payload,
		Headers: row.Headers,
	})
	now := f.now().UTC()

	if pubErr == nil {
		if err := outbox.MarkSent(ctx, row.ID, now); err != nil {
			return errors.Wrapf(err, "failed to mark outbox row %d sent", row.ID)
		}
		row.Status = entity.OutboxStatusSent
		f.metrics.RecordProduced(row.Topic, metrics.OutcomeSent)
		logger.Debug("[Outbox] Event sent")

		return nil
	}

	f.metrics.RecordProduced(row.Topic, metrics.OutcomeFailed)

	attempts := row.Attempts + 1
	dead := attempts >= f.opts.MaxAttempts
	next := now.Add(f.retryDelay(attempts))
	if err := outbox.MarkFailed(ctx, row.ID, pubErr.Error(), next, dead); err != nil {
		return errors.Wrapf(err, "failed to mark outbox row %d failed", row.ID)
	}
	row.Attempts = attempts

	if dead {
		row.Status = entity.OutboxStatusDead
		logger.Error("[Outbox] Event marked dead", slog.Int("attempts", attempts), slog.Any("error", pubErr))

		return nil
	}

	logger.Warn("[Outbox] Failed to send event, will retry",
		slog.Int("attempts", attempts),
		slog.Time("next_attempt_at", next),
		slog.Any("error", pubErr),
	)

	return nil
}

// retryDelay doubles the configured backoff per failed attempt.
func (f *Forwarder) retryDelay(attempts int) time.Duration {
	d := f.opts.Backoff
	for i := 1; i < attempts && d < maxRetryDelay; i++ {
		d *= 2
	}

	return min(d, maxRetryDelay)
}

// shutdown stops the Serve loop and waits for the current pass.
func (f *Forwarder) shutdown(ctx context.Context) error {
	f.stopOnce.Do(func() { close(f.stop) })
	if !f.started.Load() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-f.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "outbox forwarder did not stop in time")
	}
}
