// ABOUTME: In-memory Backend used as a test fake and for ephemeral sessions.
// ABOUTME: Copies values on the way in and out so callers cannot alias stored bytes.
package storage

import "sync"

// MemoryBackend keeps values in a map.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Compile-time check that MemoryBackend implements Backend.
var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// NewMemoryStore is shorthand for a Store over a fresh MemoryBackend.
func NewMemoryStore(opts ...Option) *Store {
	return NewStore(NewMemoryBackend(), opts...)
}

// Get returns a copy of the value for key.
func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (m *MemoryBackend) Close() error {
	return nil
}
