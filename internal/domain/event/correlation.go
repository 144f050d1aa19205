package event

import (
	"context"
	"strconv"

	"gamehub/internal/domain/constants"
)

type correlationKey struct{}

// WithCorrelationID marks ctx as handling work that started at id.
// Every event emitted under ctx carries id in its correlation-id header.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}

	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id set by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)

	return id
}

// RecordCorrelationID is the correlation of a consumed record: the one it carries,
// or its own position when it starts a chain.
func RecordCorrelationID(headers map[string]string, topic string, partition int, offset int64) string {
	if id := headers[constants.HeaderCorrelationID]; id != "" {
		return id
	}

	return topic + "/" + strconv.Itoa(partition) + "/" + strconv.FormatInt(offset, 10)
}

// EncodeContext is Encode plus the correlation-id header taken from ctx.
func EncodeContext(ctx context.Context, e Event, producer string) ([]byte, map[string]string, error) {
	data, headers, err := Encode(e, producer)
	if err != nil {
		return nil, nil, err
	}
	if id := CorrelationID(ctx); id != "" {
		headers[constants.HeaderCorrelationID] = id
	}

	return data, headers, nil
}
