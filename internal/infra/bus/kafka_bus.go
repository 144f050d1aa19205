package bus

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const (
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaMaxBytes     = 10e6
)

// kafkaBus implements service.MessageBus on Kafka.
type kafkaBus struct {
	brokers           []string
	partitions        int
	replicationFactor int
	writer            *kafka.Writer
	logger            *slog.Logger
}

// NewKafkaBus returns a bus writing to brokers. Keys are hashed onto partitions.
func NewKafkaBus(brokers []string, partitions, replicationFactor int, logger *slog.Logger) (service.MessageBus, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required for the kafka provider")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: false,
	}

	logger.Info("[Bus] Kafka bus initialized", slog.Any("brokers", brokers))

	return &kafkaBus{
		brokers:           brokers,
		partitions:        partitions,
		replicationFactor: replicationFactor,
		writer:            writer,
		logger:            logger,
	}, nil
}

func (b *kafkaBus) Publish(ctx context.Context, msgs ...service.BusMessage) error {
	records := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		records = append(records, kafka.Message{
			Topic:   msg.Topic,
			Key:     []byte(msg.Key),
			Value:   msg.Value,
			Headers: toKafkaHeaders(msg.Headers),
		})
	}

	if err := b.writer.WriteMessages(ctx, records...); err != nil {
		return errors.Wrap(domainerrors.ErrTransportFailed, "kafka write: "+err.Error())
	}

	return nil
}

func (b *kafkaBus) Subscribe(_ context.Context, topic, group string) (service.Subscription, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     group,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    kafkaMaxBytes,
		StartOffset: kafka.FirstOffset,
		// commits are explicit and synchronous
		CommitInterval: 0,
	})

	return &kafkaSubscription{reader: reader}, nil
}

// EnsureTopics creates the missing topics through the cluster controller.
func (b *kafkaBus) EnsureTopics(ctx context.Context, topics ...string) error {
	return CreateKafkaTopics(ctx, b.brokers[0], b.partitions, b.replicationFactor, b.logger, topics...)
}

func (b *kafkaBus) Close() error {
	return errors.WithStack(b.writer.Close())
}

// CreateKafkaTopics creates topics on the cluster reachable through broker; existing topics are left alone.
func CreateKafkaTopics(ctx context.Context, broker string, partitions, replicationFactor int, logger *slog.Logger, topics ...string) error {
	dialer := &kafka.Dialer{Timeout: 10 * time.Second}

	conn, err := dialer.DialContext(ctx, "tcp", broker)
	if err != nil {
		return errors.Wrap(domainerrors.ErrTransportFailed, "dial broker: "+err.Error())
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return errors.Wrap(domainerrors.ErrTransportFailed, "find controller: "+err.Error())
	}

	controllerConn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return errors.Wrap(domainerrors.ErrTransportFailed, "dial controller: "+err.Error())
	}
	defer controllerConn.Close()

	configs := make([]kafka.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		configs = append(configs, kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     partitions,
			ReplicationFactor: replicationFactor,
		})
	}

	if err := controllerConn.CreateTopics(configs...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return errors.Wrap(domainerrors.ErrTransportFailed, "create topics: "+err.Error())
	}

	logger.Info("[Bus] Kafka topics ensured", slog.Int("count", len(configs)))

	return nil
}

// kafkaSubscription wraps a consumer-group reader.
type kafkaSubscription struct {
	reader *kafka.Reader
}

func (s *kafkaSubscription) Fetch(ctx context.Context) (service.BusMessage, error) {
	m, err := s.reader.FetchMessage(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return service.BusMessage{}, ctx.Err()
		}

		return service.BusMessage{}, errors.Wrap(domainerrors.ErrTransportFailed, "kafka fetch: "+err.Error())
	}

	return service.BusMessage{
		Topic:     m.Topic,
		Key:       string(m.Key),
		Value:     m.Value,
		Headers:   fromKafkaHeaders(m.Headers),
		Partition: m.Partition,
		Offset:    m.Offset,
		Time:      m.Time,
	}, nil
}

func (s *kafkaSubscription) Commit(ctx context.Context, msg service.BusMessage) error {
	if err := s.reader.CommitMessages(ctx, kafka.Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}); err != nil {
		return errors.Wrap(domainerrors.ErrTransportFailed, "kafka commit: "+err.Error())
	}

	return nil
}

func (s *kafkaSubscription) Close() error {
	return errors.WithStack(s.reader.Close())
}

func toKafkaHeaders(headers map[string]string) []kafka.Header {
	out := make([]kafka.Header, 0, len(headers))
	for k, v := range headers {
		out = append(out, kafka.Header{Key: k, Value: []byte(v)})
	}

	return out
}

func fromKafkaHeaders(headers []kafka.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		out[h.Key] = string(h.Value)
	}

	return out
}
