package bus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamehub/internal/domain/constants"
	"gamehub/internal/domain/event"
	mockService "gamehub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsyncEmitter_AppendsEncodedEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := NewMemoryBus(1, logger)
	defer b.Close()

	emitter := NewAsyncEmitter(b, constants.ServiceDistributor, nil, logger)
	ctx := event.WithCorrelationID(context.Background(), "req-1")

	require.NoError(t, emitter.Emit(ctx, "k-1", &event.ExampleEvent{Payload: "hello"}))
	emitter.Wait()

	sub, err := b.Subscribe(ctx, event.TopicExampleEvent, "test")
	require.NoError(t, err)
	defer sub.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	msg, err := sub.Fetch(fetchCtx)
	require.NoError(t, err)

	assert.Equal(t, "k-1", msg.Key)
	assert.Equal(t, event.TopicExampleEvent, msg.Headers[constants.HeaderEventType])
	assert.Equal(t, constants.ServiceDistributor, msg.Headers[constants.HeaderProducer])
	assert.Equal(t, "req-1", msg.Headers[constants.HeaderCorrelationID])
	assert.JSONEq(t, `{"payload":"hello"}`, string(msg.Value))
}

func TestAsyncEmitter_PublishFailureIsOnlyLogged(t *testing.T) {
	msgBus := mockService.NewMockMessageBus(t)
	msgBus.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("service.BusMessage")).
		Return(errors.New("broker down"))

	emitter := NewAsyncEmitter(msgBus, constants.ServicePublisher, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := emitter.Emit(context.Background(), "k", &event.ExampleEvent{Payload: "x"})
	require.NoError(t, err)
	emitter.Wait()
}

func TestAllTopics_IncludesDeadLetters(t *testing.T) {
	topics := AllTopics()

	assert.Contains(t, topics, event.TopicReviewGame)
	assert.Contains(t, topics, event.TopicReviewGame+constants.DeadLetterSuffix)
	assert.Len(t, topics, 2*len(event.TopicNames()))
}
