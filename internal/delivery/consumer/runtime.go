package consumer

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/constants"
	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"
	"gamehub/internal/infra/metrics"

	"go.uber.org/fx"
)

// ErrListenerNotFound is returned for an unregistered listener id.
var ErrListenerNotFound = domainerrors.ErrNotFound.WithDetails("listener not found")

// Nudger is woken after a handler committed, so staged events leave without waiting for a poll.
type Nudger interface {
	Nudge()
}

// Options holds the redelivery policy of a Runtime.
type Options struct {
	GroupID        string
	Concurrency    int
	AutoStartup    bool
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	DeadLetter     bool
	ConsumeLogSize int
}

// OptionsFromConfig reads the consumer and bus sections.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{GroupID: cfg.Env.ServiceName}
	if cfg.Bus != nil && cfg.Bus.GroupID != "" {
		opts.GroupID = cfg.Bus.GroupID
	}
	if c := cfg.Consumer; c != nil {
		opts.Concurrency = c.Concurrency
		opts.AutoStartup = c.AutoStartup
		opts.MaxAttempts = c.MaxAttempts
		opts.InitialBackoff = c.InitialBackoff
		opts.MaxBackoff = c.MaxBackoff
		opts.DeadLetter = c.DeadLetter
		opts.ConsumeLogSize = c.ConsumeLogSize
	}

	return opts
}

type listenerState struct {
	Listener

	cancel context.CancelFunc
	done   chan struct{}
}

func (s *listenerState) running() bool {
	return s.done != nil
}

// Runtime owns the listeners of a service and their lifecycle.
type Runtime struct {
	bus     service.MessageBus
	opts    Options
	logs    *ConsumeLogStore
	metrics *metrics.Collector
	nudger  Nudger
	logger  *slog.Logger

	mu        sync.Mutex
	listeners map[string]*listenerState
	order     []string
}

// RuntimeParams holds dependencies for the Runtime, injected by Fx
type RuntimeParams struct {
	fx.In

	Lc        fx.Lifecycle
	Bus       service.MessageBus
	Config    *config.Config
	Logger    *slog.Logger
	Listeners []Listener         `group:"listeners"`
	Metrics   *metrics.Collector `optional:"true"`
	Nudger    Nudger             `optional:"true"`
}

// NewRuntime registers the listeners; they are started by Serve and stopped with the app.
func NewRuntime(params RuntimeParams) (*Runtime, error) {
	r := New(params.Bus, OptionsFromConfig(params.Config), params.Metrics, params.Nudger, params.Logger)
	for _, l := range params.Listeners {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			r.logger.Info("[Consumer] Stopping listeners")
			r.StopAll()

			return nil
		},
	})

	return r, nil
}

// New builds a Runtime without listeners. metrics and nudger may be nil.
func New(bus service.MessageBus, opts Options, collector *metrics.Collector, nudger Nudger, logger *slog.Logger) *Runtime {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.MaxBackoff < opts.InitialBackoff {
		opts.MaxBackoff = opts.InitialBackoff
	}

	return &Runtime{
		bus:       bus,
		opts:      opts,
		logs:      NewConsumeLogStore(opts.ConsumeLogSize),
		metrics:   collector,
		nudger:    nudger,
		logger:    logger,
		listeners: make(map[string]*listenerState),
	}
}

// Register adds a listener in the stopped state.
func (r *Runtime) Register(l Listener) error {
	if l.ID == "" || l.Topic == "" || l.Handle == nil {
		return errors.Errorf("listener %q is incomplete", l.ID)
	}
	if !event.KnownTopic(l.Topic) {
		return errors.Wrap(domainerrors.ErrUnknownTopic, l.Topic)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listeners[l.ID]; ok {
		return errors.Errorf("listener %s registered twice", l.ID)
	}
	if l.GroupID == "" {
		l.GroupID = r.opts.GroupID
	}
	if l.Concurrency <= 0 {
		l.Concurrency = r.opts.Concurrency
	}

	r.listeners[l.ID] = &listenerState{Listener: l}
	r.order = append(r.order, l.ID)

	return nil
}

// Logs returns the ingress log of this runtime.
func (r *Runtime) Logs() *ConsumeLogStore {
	return r.logs
}

// Serve starts the listeners marked for auto startup.
func (r *Runtime) Serve(ctx context.Context) error {
	if !r.opts.AutoStartup {
		r.logger.Info("[Consumer] Auto startup disabled, listeners stay stopped")

		return nil
	}

	r.mu.Lock()
	ids := slices.Clone(r.order)
	r.mu.Unlock()

	for _, id := range ids {
		r.mu.Lock()
		auto := r.listeners[id].AutoStartup
		r.mu.Unlock()
		if !auto {
			continue
		}
		if err := r.Start(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// Listeners lists the registered listeners in registration order.
func (r *Runtime) Listeners() []ListenerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ListenerInfo, 0, len(r.order))
	for _, id := range r.order {
		s := r.listeners[id]
		out = append(out, ListenerInfo{
			ID:          s.ID,
			Topic:       s.Topic,
			GroupID:     s.GroupID,
			Concurrency: s.Concurrency,
			Running:     s.running(),
		})
	}

	return out
}

// Start subscribes the workers of a listener. Starting a running listener is a no-op.
func (r *Runtime) Start(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.listeners[id]
	if !ok {
		return errors.Wrap(ErrListenerNotFound, id)
	}
	if s.running() {
		return nil
	}

	subs := make([]service.Subscription, 0, s.Concurrency)
	for range s.Concurrency {
		sub, err := r.bus.Subscribe(ctx, s.Topic, s.GroupID)
		if err != nil {
			for _, opened := range subs {
				_ = opened.Close()
			}

			return errors.Wrapf(err, "subscribe %s", id)
		}
		subs = append(subs, sub)
	}

	// Workers outlive the caller's context; Stop cancels them.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.work(runCtx, s.Listener, i, sub)
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	r.logger.Info("[Consumer] Listener started",
		slog.String("listener", id),
		slog.String("topic", s.Topic),
		slog.String("group", s.GroupID),
		slog.Int("concurrency", s.Concurrency),
	)

	return nil
}

// Stop cancels the workers of a listener and waits for in-flight handlers to finish.
func (r *Runtime) Stop(id string) error {
	r.mu.Lock()
	s, ok := r.listeners[id]
	if !ok {
		r.mu.Unlock()

		return errors.Wrap(ErrListenerNotFound, id)
	}
	if !s.running() {
		r.mu.Unlock()

		return nil
	}
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	r.mu.Unlock()

	cancel()
	<-done

	r.logger.Info("[Consumer] Listener stopped", slog.String("listener", id))

	return nil
}

// StartAll starts every registered listener.
func (r *Runtime) StartAll(ctx context.Context) error {
	for _, info := range r.Listeners() {
		if err := r.Start(ctx, info.ID); err != nil {
			return err
		}
	}

	return nil
}

// StopAll stops every running listener.
func (r *Runtime) StopAll() {
	for _, info := range r.Listeners() {
		_ = r.Stop(info.ID)
	}
}

func (r *Runtime) work(ctx context.Context, l Listener, worker int, sub service.Subscription) {
	defer func() {
		if err := sub.Close(); err != nil {
			r.logger.Warn("[Consumer] Failed to close subscription", slog.String("listener", l.ID), slog.Any("error", err))
		}
	}()

	for {
		msg, err := sub.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("[Consumer] Fetch failed",
				slog.String("listener", l.ID),
				slog.Int("worker", worker),
				slog.Any("error", err),
			)
			if !sleep(ctx, r.opts.MaxBackoff) {
				return
			}

			continue
		}

		r.process(ctx, l, sub, msg)
	}
}

// process handles one record; the offset is committed unless the listener stopped mid-retry.
func (r *Runtime) process(ctx context.Context, l Listener, sub service.Subscription, msg service.BusMessage) {
	correlationID := event.RecordCorrelationID(msg.Headers, msg.Topic, msg.Partition, msg.Offset)
	logger := r.logger.With(
		slog.String("listener", l.ID),
		slog.String("topic", msg.Topic),
		slog.String("key", msg.Key),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.String("correlation_id", correlationID),
	)
	// Handlers run detached from the listener so a stop lets them finish.
	handlerCtx := deliverycontext.WithLogger(context.WithoutCancel(ctx), logger)
	handlerCtx = event.WithCorrelationID(handlerCtx, correlationID)

	start := time.Now()
	outcome, ok := r.dispatch(ctx, handlerCtx, l, msg, logger)
	if !ok {
		logger.Info("[Consumer] Listener stopped before the record was settled, it will be redelivered")

		return
	}

	if err := sub.Commit(handlerCtx, msg); err != nil {
		logger.Error("[Consumer] Commit failed", slog.Any("error", err))
	}

	r.metrics.RecordConsumed(l.ID, outcome, time.Since(start))
	r.logs.Append(entity.ConsumeLog{
		ConsumerID:  l.ID,
		ConsumeDate: time.Now().UTC(),
		Topic:       msg.Topic,
		Key:         msg.Key,
		Event:       string(msg.Value),
		Outcome:     outcome,
	})

	if outcome == metrics.OutcomeHandled && r.nudger != nil {
		r.nudger.Nudge()
	}
}

// dispatch returns the outcome, and false when the listener was stopped before the record was settled.
func (r *Runtime) dispatch(
	ctx, handlerCtx context.Context,
	l Listener,
	msg service.BusMessage,
	logger *slog.Logger,
) (string, bool) {
	e, err := event.Decode(msg.Topic, msg.Value)
	if err != nil {
		logger.Warn("[Consumer] Rejected undecodable record", slog.Any("error", err))

		return metrics.OutcomeRejected, true
	}

	var handleErr error
	for attempt := 1; ; attempt++ {
		handleErr = l.Handle(handlerCtx, e)
		if handleErr == nil {
			logger.Debug("[Consumer] Record handled", slog.Int("attempt", attempt))

			return metrics.OutcomeHandled, true
		}

		if domainerrors.IsDomainError(handleErr) {
			logger.Warn("[Consumer] Record rejected", slog.Any("error", handleErr))

			return metrics.OutcomeRejected, true
		}

		if !errors.IsRetryable(handleErr) {
			logger.Error("[Consumer] Handler failed permanently", slog.Any("error", handleErr))

			return r.deadLetter(ctx, msg, attempt, handleErr, logger)
		}

		if attempt >= r.opts.MaxAttempts {
			logger.Error("[Consumer] Redelivery attempts exhausted",
				slog.Int("attempts", attempt),
				slog.Any("error", handleErr),
			)

			return r.deadLetter(ctx, msg, attempt, handleErr, logger)
		}

		logger.Warn("[Consumer] Handler failed, retrying",
			slog.Int("attempt", attempt),
			slog.Any("error", handleErr),
		)
		if !sleep(ctx, r.backoff(attempt)) {
			return "", false
		}
	}
}

// deadLetter appends the record to <topic>.dlt, retrying until it is accepted or the listener stops.
func (r *Runtime) deadLetter(
	ctx context.Context,
	msg service.BusMessage,
	attempts int,
	cause error,
	logger *slog.Logger,
) (string, bool) {
	if !r.opts.DeadLetter {
		logger.Error("[Consumer] Dead letter disabled, record dropped")

		return metrics.OutcomeFailed, true
	}

	headers := maps.Clone(msg.Headers)
	if headers == nil {
		headers = make(map[string]string, 4)
	}
	headers[constants.HeaderError] = cause.Error()
	headers[constants.HeaderAttempts] = strconv.Itoa(attempts)
	headers[constants.HeaderOriginalPartition] = strconv.Itoa(msg.Partition)
	headers[constants.HeaderOriginalOffset] = strconv.FormatInt(msg.Offset, 10)

	dlt := service.BusMessage{
		Topic:   msg.Topic + constants.DeadLetterSuffix,
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}

	for attempt := 1; ; attempt++ {
		err := r.bus.Publish(context.WithoutCancel(ctx), dlt)
		if err == nil {
			r.metrics.RecordProduced(dlt.Topic, metrics.OutcomeSent)
			logger.Warn("[Consumer] Record dead-lettered", slog.String("dlt", dlt.Topic))

			return metrics.OutcomeDeadLettered, true
		}

		r.metrics.RecordProduced(dlt.Topic, metrics.OutcomeFailed)
		logger.Error("[Consumer] Dead letter publish failed", slog.Int("attempt", attempt), slog.Any("error", err))
		if !sleep(ctx, r.backoff(attempt)) {
			return "", false
		}
	}
}

// backoff doubles the initial delay per attempt, capped at the maximum.
func (r *Runtime) backoff(attempt int) time.Duration {
	d := r.opts.InitialBackoff
	for i := 1; i < attempt && d < r.opts.MaxBackoff; i++ {
		d *= 2
	}

	return min(d, r.opts.MaxBackoff)
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
