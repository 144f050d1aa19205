package consumer

import (
	"testing"

	"gamehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func keys(entries []entity.ConsumeLog) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key)
	}

	return out
}

func TestConsumeLogStore(t *testing.T) {
	store := NewConsumeLogStore(3)
	assert.Empty(t, store.Recent(0))

	store.Append(entity.ConsumeLog{Key: "a"})
	store.Append(entity.ConsumeLog{Key: "b"})
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []string{"a", "b"}, keys(store.Recent(0)))
	assert.Equal(t, []string{"b"}, keys(store.Recent(1)))

	store.Append(entity.ConsumeLog{Key: "c"})
	store.Append(entity.ConsumeLog{Key: "d"})
	store.Append(entity.ConsumeLog{Key: "e"})
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"c", "d", "e"}, keys(store.Recent(0)))
	assert.Equal(t, []string{"d", "e"}, keys(store.Recent(2)))
	assert.Equal(t, []string{"c", "d", "e"}, keys(store.Recent(10)))
}

func TestConsumeLogStore_ZeroCapacity(t *testing.T) {
	store := NewConsumeLogStore(0)
	store.Append(entity.ConsumeLog{Key: "a"})
	store.Append(entity.ConsumeLog{Key: "b"})

	assert.Equal(t, []string{"b"}, keys(store.Recent(0)))
}
