package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/auth"
	"gamehub/internal/infra/bus"

	domainerrors "gamehub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestBus(t *testing.T) service.MessageBus {
	t.Helper()

	msgBus := bus.NewMemoryBus(1, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = msgBus.Close() })

	return msgBus
}

func TestProduceThenTail(t *testing.T) {
	msgBus := newTestBus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, runProduce(ctx, msgBus, event.TopicExampleEvent, "k1", `{"payload":"hello"}`, &out))
	assert.Equal(t, "Sent example-event key=k1\n", out.String())

	out.Reset()
	require.NoError(t, runTail(ctx, msgBus, event.TopicExampleEvent, "busctl", 1, &out))

	line := out.String()
	assert.True(t, strings.HasPrefix(line, "example-event[0]@0 key=k1 "))
	assert.Contains(t, line, "event-type=example-event")
	assert.Contains(t, line, "producer=busctl")
	assert.Contains(t, line, `{"payload":"hello"}`)
}

func TestProduce_RandomKey(t *testing.T) {
	msgBus := newTestBus(t)

	var out bytes.Buffer
	require.NoError(t, runProduce(context.Background(), msgBus, event.TopicExampleEvent, "", `{"payload":"x"}`, &out))
	assert.NotEqual(t, "Sent example-event key=\n", out.String())
}

func TestProduce_KeyFromAggregate(t *testing.T) {
	msgBus := newTestBus(t)

	var out bytes.Buffer
	payload := `{"reviewId":9,"playerId":42,"reactType":1}`
	require.NoError(t, runProduce(context.Background(), msgBus, event.TopicReactReview, "", payload, &out))
	assert.Equal(t, "Sent react-review key=review-9\n", out.String())

	out.Reset()
	require.NoError(t, runProduce(context.Background(), msgBus, event.TopicRegisterPlayer, "", `{"distributorId":1,"pseudo":"neo"}`, &out))
	assert.Equal(t, "Sent register-player key=distributor-1\n", out.String())
}

func TestProduce_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		payload string
		want    error
	}{
		{name: "unknown topic", topic: "no-such-topic", payload: `{}`, want: domainerrors.ErrUnknownTopic},
		{name: "malformed json", topic: event.TopicExampleEvent, payload: `{`, want: domainerrors.ErrParse},
		{name: "missing field", topic: event.TopicExampleEvent, payload: `{}`, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgBus := newTestBus(t)

			var out bytes.Buffer
			err := runProduce(context.Background(), msgBus, tt.topic, "k", tt.payload, &out)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestTail_StopsOnCancel(t *testing.T) {
	msgBus := newTestBus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, runTail(ctx, msgBus, event.TopicExampleEvent, "busctl", 0, &out))
	assert.Empty(t, out.String())
}

func TestFormatRecord_SortsHeaders(t *testing.T) {
	line := formatRecord(service.BusMessage{
		Topic:     "t",
		Key:       "k",
		Value:     []byte("v"),
		Partition: 2,
		Offset:    7,
		Headers:   map[string]string{"b": "2", "a": "1"},
	})

	assert.Equal(t, "t[2]@7 key=k headers={a=1,b=2} v", line)
}

func TestHashPassword(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runHashPassword(strings.NewReader("s3cret\n"), &out, bcrypt.MinCost))

	hash := strings.TrimSpace(out.String())
	assert.True(t, auth.NewBcryptHasher(nil).Check("s3cret", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	var out bytes.Buffer
	err := runHashPassword(strings.NewReader("\n"), &out, bcrypt.MinCost)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is empty")
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092, ,b:9092"))
	assert.Nil(t, splitBrokers(""))
}

func TestPrintTopics(t *testing.T) {
	var out bytes.Buffer
	printTopics(&out)

	for _, name := range bus.AllTopics() {
		if strings.HasSuffix(name, ".dlt") {
			continue
		}
		assert.Contains(t, out.String(), name)
	}
}
