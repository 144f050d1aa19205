package consumer

import (
	"sync"

	"gamehub/internal/domain/entity"
)

// ConsumeLogStore keeps the most recent consume logs; the oldest entry is evicted when full.
type ConsumeLogStore struct {
	mu      sync.RWMutex
	entries []entity.ConsumeLog
	next    int
	full    bool
}

// NewConsumeLogStore returns a store holding at most capacity entries.
func NewConsumeLogStore(capacity int) *ConsumeLogStore {
	if capacity <= 0 {
		capacity = 1
	}

	return &ConsumeLogStore{entries: make([]entity.ConsumeLog, capacity)}
}

// Append records one entry.
func (s *ConsumeLogStore) Append(entry entity.ConsumeLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = entry
	s.next = (s.next + 1) % len(s.entries)
	if s.next == 0 {
		s.full = true
	}
}

// Len returns the number of entries held.
func (s *ConsumeLogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.full {
		return len(s.entries)
	}

	return s.next
}

// Recent returns up to n entries, oldest first. n <= 0 returns all of them.
func (s *ConsumeLogStore) Recent(n int) []entity.ConsumeLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	size := s.next
	start := 0
	if s.full {
		size = len(s.entries)
		start = s.next
	}
	if n <= 0 || n > size {
		n = size
	}

	out := make([]entity.ConsumeLog, 0, n)
	for i := size - n; i < size; i++ {
		out = append(out, s.entries[(start+i)%len(s.entries)])
	}

	return out
}
