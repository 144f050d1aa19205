// Package bus provides the message bus implementations and their fx wiring.
package bus

import (
	"context"
	"log/slog"

	"gamehub/config"
	"gamehub/internal/domain/constants"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/lifecycle"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusParams holds dependencies for the MessageBus, injected by Fx
type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMessageBus creates the MessageBus selected by configuration
func NewMessageBus(params BusParams) (service.MessageBus, error) {
	cfg := params.Config.Bus
	logger := params.Logger

	var (
		msgBus service.MessageBus
		err    error
	)

	switch cfg.Provider {
	case constants.BusProviderMemory:
		logger.Info("Using in-memory message bus", slog.Int("partitions", cfg.Partitions))

		msgBus = NewMemoryBus(cfg.Partitions, logger)

	case constants.BusProviderKafka:
		msgBus, err = NewKafkaBus(cfg.Brokers, cfg.Partitions, cfg.ReplicationFactor, logger)
		if err != nil {
			return nil, err
		}

	case constants.BusProviderGoogle:
		if cfg.Google == nil {
			return nil, errors.New("bus.google is required for google provider")
		}
		msgBus, err = NewGoogleBus(params.Ctx, GoogleOptions{
			ProjectID: cfg.Google.ProjectID,
			Endpoint:  cfg.Google.Endpoint,
		}, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown bus provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Provider == constants.BusProviderKafka && !cfg.CreateTopics {
				return nil
			}
			ensureCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return msgBus.EnsureTopics(ensureCtx, AllTopics()...)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MessageBus")

			return msgBus.Close()
		},
	})

	return msgBus, nil
}

// AsyncEmitterParams holds dependencies for the AsyncEmitter
type AsyncEmitterParams struct {
	fx.In

	Lc      fx.Lifecycle
	Bus     service.MessageBus
	Config  *config.Config
	Metrics *metrics.Collector `optional:"true"`
	Logger  *slog.Logger
}

// NewAsyncEmitterProvider builds the AsyncEmitter and drains it on shutdown.
func NewAsyncEmitterProvider(params AsyncEmitterParams) *AsyncEmitter {
	emitter := NewAsyncEmitter(params.Bus, params.Config.Env.ServiceName, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				emitter.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "pending events not sent")
			}
		},
	})

	return emitter
}

// AllTopics returns every topic and its dead-letter topic.
func AllTopics() []string {
	names := event.TopicNames()
	topics := make([]string, 0, 2*len(names))
	for _, name := range names {
		topics = append(topics, name, name+constants.DeadLetterSuffix)
	}

	return topics
}

// Module provides the message bus FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMessageBus,
		NewAsyncEmitterProvider,
	),
)
