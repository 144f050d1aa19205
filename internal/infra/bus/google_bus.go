package bus

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// attribute carrying the record key next to the ordering key
const attrKey = "key"

const googleAckDeadlineSeconds = 60

// GoogleOptions configures the Pub/Sub client.
type GoogleOptions struct {
	ProjectID string
	// Endpoint targets an emulator; it also disables authentication and TLS.
	Endpoint string
}

// googleBus implements service.MessageBus on Google Cloud Pub/Sub. Ordering keys give
// per-key order; a group is one subscription named <topic>-<group>.
type googleBus struct {
	client    *pubsub.Client
	projectID string
	logger    *slog.Logger

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
}

// NewGoogleBus creates the Pub/Sub client.
func NewGoogleBus(ctx context.Context, opts GoogleOptions, logger *slog.Logger) (service.MessageBus, error) {
	if opts.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}

	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts,
			option.WithEndpoint(opts.Endpoint),
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}

	client, err := pubsub.NewClient(ctx, opts.ProjectID, clientOpts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.Info("[Bus] Google Pub/Sub bus initialized",
		slog.String("project_id", opts.ProjectID),
		slog.String("endpoint", opts.Endpoint),
	)

	return &googleBus{
		client:     client,
		projectID:  opts.ProjectID,
		logger:     logger,
		publishers: make(map[string]*pubsub.Publisher),
	}, nil
}

func (b *googleBus) topicPath(topic string) string {
	return fmt.Sprintf("projects/%s/topics/%s", b.projectID, topic)
}

func (b *googleBus) subscriptionPath(topic, group string) string {
	return fmt.Sprintf("projects/%s/subscriptions/%s-%s", b.projectID, topic, group)
}

func (b *googleBus) publisher(topic string) *pubsub.Publisher {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.publishers[topic]
	if !ok {
		p = b.client.Publisher(topic)
		p.EnableMessageOrdering = true
		b.publishers[topic] = p
	}

	return p
}

func (b *googleBus) Publish(ctx context.Context, msgs ...service.BusMessage) error {
	results := make([]*pubsub.PublishResult, 0, len(msgs))
	for _, msg := range msgs {
		attrs := maps.Clone(msg.Headers)
		if attrs == nil {
			attrs = map[string]string{}
		}
		attrs[attrKey] = msg.Key

		results = append(results, b.publisher(msg.Topic).Publish(ctx, &pubsub.Message{
			Data:        msg.Value,
			Attributes:  attrs,
			OrderingKey: msg.Key,
		}))
	}

	for i, result := range results {
		if _, err := result.Get(ctx); err != nil {
			// an ordering key is paused after a failure until resumed
			b.publisher(msgs[i].Topic).ResumePublish(msgs[i].Key)

			return errors.Wrap(domainerrors.ErrTransportFailed, "pubsub publish: "+err.Error())
		}
	}

	return nil
}

// Subscribe creates the group's subscription if needed and receives one message at a time.
func (b *googleBus) Subscribe(ctx context.Context, topic, group string) (service.Subscription, error) {
	subPath := b.subscriptionPath(topic, group)
	_, err := b.client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:                  subPath,
		Topic:                 b.topicPath(topic),
		AckDeadlineSeconds:    googleAckDeadlineSeconds,
		EnableMessageOrdering: true,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return nil, errors.Wrapf(domainerrors.ErrTransportFailed, "create subscription %s: %v", subPath, err)
	}

	subscriber := b.client.Subscriber(subPath)
	subscriber.ReceiveSettings.MaxOutstandingMessages = 1
	subscriber.ReceiveSettings.NumGoroutines = 1

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &googleSubscription{
		topic:    topic,
		messages: make(chan *pubsub.Message),
		done:     make(chan struct{}),
		cancel:   cancel,
		pending:  make(map[int64]*pubsub.Message),
	}

	go func() {
		defer close(sub.done)
		err := subscriber.Receive(receiveCtx, func(ctx context.Context, m *pubsub.Message) {
			select {
			case sub.messages <- m:
			case <-ctx.Done():
				m.Nack()
			}
		})
		if err != nil {
			b.logger.Error("[Bus] Pub/Sub receive stopped", slog.String("subscription", subPath), slog.Any("error", err))
		}
	}()

	return sub, nil
}

func (b *googleBus) EnsureTopics(ctx context.Context, topics ...string) error {
	for _, topic := range topics {
		_, err := b.client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: b.topicPath(topic)})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return errors.Wrapf(domainerrors.ErrTransportFailed, "create topic %s: %v", topic, err)
		}
	}
	b.logger.Info("[Bus] Pub/Sub topics ensured", slog.Int("count", len(topics)))

	return nil
}

func (b *googleBus) Close() error {
	b.mu.Lock()
	for _, p := range b.publishers {
		p.Stop()
	}
	b.mu.Unlock()

	return errors.WithStack(b.client.Close())
}

// googleSubscription adapts the callback receiver to Fetch and Commit.
// Pub/Sub has no offsets; Offset carries a local sequence used to find the message on Commit.
type googleSubscription struct {
	topic    string
	messages chan *pubsub.Message
	done     chan struct{}
	cancel   context.CancelFunc

	mu      sync.Mutex
	seq     int64
	pending map[int64]*pubsub.Message
}

func (s *googleSubscription) Fetch(ctx context.Context) (service.BusMessage, error) {
	select {
	case <-ctx.Done():
		return service.BusMessage{}, ctx.Err()
	case <-s.done:
		return service.BusMessage{}, ErrClosed
	case m := <-s.messages:
		s.mu.Lock()
		s.seq++
		offset := s.seq
		s.pending[offset] = m
		s.mu.Unlock()

		headers := maps.Clone(m.Attributes)
		key := headers[attrKey]
		delete(headers, attrKey)

		return service.BusMessage{
			Topic:   s.topic,
			Key:     key,
			Value:   m.Data,
			Headers: headers,
			Offset:  offset,
			Time:    m.PublishTime,
		}, nil
	}
}

func (s *googleSubscription) Commit(_ context.Context, msg service.BusMessage) error {
	s.mu.Lock()
	m, ok := s.pending[msg.Offset]
	delete(s.pending, msg.Offset)
	s.mu.Unlock()

	if !ok {
		return errors.Errorf("commit of unknown message %d on %s", msg.Offset, s.topic)
	}
	m.Ack()

	return nil
}

// Close nacks what was not committed so Pub/Sub redelivers it.
func (s *googleSubscription) Close() error {
	s.cancel()

	s.mu.Lock()
	for offset, m := range s.pending {
		m.Nack()
		delete(s.pending, offset)
	}
	s.mu.Unlock()

	<-s.done

	return nil
}
