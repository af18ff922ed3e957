// Package ringbuffer provides a fixed-capacity history that keeps the newest entries.
package ringbuffer

import "sync"

// Buffer is a thread-safe ring buffer. Once full, every Push replaces the oldest entry.
type Buffer[T any] struct {
	mu      sync.RWMutex
	entries []T
	next    int
	count   int
	total   uint64
}

// New creates a buffer holding at most capacity entries. It panics on a non-positive capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ringbuffer: capacity must be greater than 0")
	}
	return &Buffer[T]{entries: make([]T, capacity)}
}

// Push appends an entry.
func (b *Buffer[T]) Push(entry T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.next] = entry
	b.next = (b.next + 1) % len(b.entries)
	if b.count < len(b.entries) {
		b.count++
	}
	b.total++
}

// Last returns up to n of the newest entries, oldest first.
// A non-positive n returns every retained entry.
func (b *Buffer[T]) Last(n int) []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n <= 0 || n > b.count {
		n = b.count
	}
	result := make([]T, n)
	start := b.next - n
	if start < 0 {
		start += len(b.entries)
	}
	for i := range n {
		result[i] = b.entries[(start+i)%len(b.entries)]
	}
	return result
}

// Len returns the number of retained entries.
func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Cap returns the capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.entries)
}

// Total returns how many entries were pushed over the buffer's lifetime, including evicted ones.
func (b *Buffer[T]) Total() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.total
}
