package event

import (
	"context"
	"testing"

	"gamehub/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, CorrelationID(ctx))
	assert.Equal(t, ctx, WithCorrelationID(ctx, ""))

	ctx = WithCorrelationID(ctx, "req-1")
	assert.Equal(t, "req-1", CorrelationID(ctx))
}

func TestRecordCorrelationID(t *testing.T) {
	carried := map[string]string{constants.HeaderCorrelationID: "req-1"}
	assert.Equal(t, "req-1", RecordCorrelationID(carried, TopicPurchaseGame, 2, 41))
	assert.Equal(t, "purchase-game/2/41", RecordCorrelationID(nil, TopicPurchaseGame, 2, 41))
}

func TestEncodeContext(t *testing.T) {
	e := &ExampleEvent{Payload: "hi"}

	_, headers, err := EncodeContext(context.Background(), e, "distributor")
	require.NoError(t, err)
	assert.NotContains(t, headers, constants.HeaderCorrelationID)

	_, headers, err = EncodeContext(WithCorrelationID(context.Background(), "req-9"), e, "distributor")
	require.NoError(t, err)
	assert.Equal(t, "req-9", headers[constants.HeaderCorrelationID])
	assert.Equal(t, "distributor", headers[constants.HeaderProducer])
}
