package bus

import (
	"context"
	"hash/fnv"
	"log/slog"
	"maps"
	"sync"
	"time"

	"gamehub/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrClosed is returned by operations on a closed bus or subscription.
var ErrClosed = errors.New("bus closed")

// memoryBus is an in-process log with kafka-like semantics: keyed records are hashed onto
// partitions, groups keep committed offsets, and each partition has at most one uncommitted
// record handed out per group. New groups start from the earliest offset.
type memoryBus struct {
	mu         sync.Mutex
	partitions int
	topics     map[string][][]service.BusMessage
	groups     map[groupKey]*memoryGroup
	changed    chan struct{}
	closed     bool
	now        func() time.Time
	logger     *slog.Logger
}

type groupKey struct {
	topic string
	group string
}

type memoryGroup struct {
	committed []int64
	next      []int64
	inFlight  []bool
	members   int
}

// NewMemoryBus returns an empty bus creating topics with partitions partitions.
func NewMemoryBus(partitions int, logger *slog.Logger) service.MessageBus {
	if partitions <= 0 {
		partitions = 1
	}

	return &memoryBus{
		partitions: partitions,
		topics:     make(map[string][][]service.BusMessage),
		groups:     make(map[groupKey]*memoryGroup),
		changed:    make(chan struct{}),
		now:        time.Now,
		logger:     logger,
	}
}

// broadcast wakes every blocked Fetch. Callers hold mu.
func (b *memoryBus) broadcast() {
	close(b.changed)
	b.changed = make(chan struct{})
}

// topicLocked returns the partitions of topic, creating it on first use. Callers hold mu.
func (b *memoryBus) topicLocked(topic string) [][]service.BusMessage {
	parts, ok := b.topics[topic]
	if !ok {
		parts = make([][]service.BusMessage, b.partitions)
		b.topics[topic] = parts
	}

	return parts
}

func (b *memoryBus) Publish(_ context.Context, msgs ...service.BusMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	for _, msg := range msgs {
		parts := b.topicLocked(msg.Topic)
		p := partitionFor(msg.Key, len(parts))

		msg.Partition = p
		msg.Offset = int64(len(parts[p]))
		msg.Time = b.now()
		msg.Headers = maps.Clone(msg.Headers)
		parts[p] = append(parts[p], msg)
	}
	b.broadcast()

	return nil
}

func (b *memoryBus) Subscribe(_ context.Context, topic, group string) (service.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	parts := b.topicLocked(topic)
	key := groupKey{topic: topic, group: group}
	g, ok := b.groups[key]
	if !ok {
		g = &memoryGroup{
			committed: make([]int64, len(parts)),
			next:      make([]int64, len(parts)),
			inFlight:  make([]bool, len(parts)),
		}
		b.groups[key] = g
	}
	g.members++

	return &memorySubscription{bus: b, key: key, start: g.members}, nil
}

func (b *memoryBus) EnsureTopics(_ context.Context, topics ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, topic := range topics {
		b.topicLocked(topic)
	}

	return nil
}

func (b *memoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		b.broadcast()
		b.logger.Info("[Bus] Memory bus closed", slog.Int("topics", len(b.topics)))
	}

	return nil
}

// memorySubscription is one member of a group.
type memorySubscription struct {
	bus   *memoryBus
	key   groupKey
	start int // partition scan offset, spreads members over partitions

	// records handed out by this member and not committed yet, by partition
	held   map[int]int64
	closed bool
}

func (s *memorySubscription) Fetch(ctx context.Context) (service.BusMessage, error) {
	for {
		s.bus.mu.Lock()
		if s.bus.closed || s.closed {
			s.bus.mu.Unlock()

			return service.BusMessage{}, ErrClosed
		}

		if msg, ok := s.claimLocked(); ok {
			s.bus.mu.Unlock()

			return msg, nil
		}
		wait := s.bus.changed
		s.bus.mu.Unlock()

		select {
		case <-ctx.Done():
			return service.BusMessage{}, ctx.Err()
		case <-wait:
		}
	}
}

// claimLocked hands out the next record of the first free partition. Callers hold bus.mu.
func (s *memorySubscription) claimLocked() (service.BusMessage, bool) {
	parts := s.bus.topics[s.key.topic]
	g := s.bus.groups[s.key]

	for i := range parts {
		p := (s.start + i) % len(parts)
		if g.inFlight[p] || g.next[p] >= int64(len(parts[p])) {
			continue
		}

		msg := parts[p][g.next[p]]
		msg.Headers = maps.Clone(msg.Headers)
		g.inFlight[p] = true
		g.next[p]++
		if s.held == nil {
			s.held = make(map[int]int64)
		}
		s.held[p] = msg.Offset

		return msg, true
	}

	return service.BusMessage{}, false
}

func (s *memorySubscription) Commit(_ context.Context, msg service.BusMessage) error {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	offset, ok := s.held[msg.Partition]
	if !ok || offset != msg.Offset {
		return errors.Errorf("commit of %s/%d@%d not held by this member", msg.Topic, msg.Partition, msg.Offset)
	}

	g := s.bus.groups[s.key]
	g.committed[msg.Partition] = msg.Offset + 1
	g.inFlight[msg.Partition] = false
	delete(s.held, msg.Partition)
	s.bus.broadcast()

	return nil
}

// Close releases uncommitted records so another member receives them again.
func (s *memorySubscription) Close() error {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	g := s.bus.groups[s.key]
	for p := range s.held {
		g.next[p] = g.committed[p]
		g.inFlight[p] = false
	}
	s.held = nil
	g.members--
	s.bus.broadcast()

	return nil
}

// partitionFor hashes key with FNV-1a, like kafka-go's Hash balancer.
func partitionFor(key string, partitions int) int {
	if partitions <= 1 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return int(h.Sum32() % uint32(partitions))
}
