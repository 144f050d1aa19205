package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRetryable(t *testing.T) {
	base := New("broker unavailable")

	err := NewRetryable(base)
	assert.True(t, IsRetryable(err))
	assert.True(t, Is(err, base))
	assert.Equal(t, "retryable: broker unavailable", err.Error())

	wrapped := fmt.Errorf("publish: %w", err)
	assert.True(t, IsRetryable(wrapped))
	assert.True(t, IsRetryable(Wrap(err, "forward")))
}

func TestNewRetryable_Nil(t *testing.T) {
	assert.NoError(t, NewRetryable(nil))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(New("plain")))
}
