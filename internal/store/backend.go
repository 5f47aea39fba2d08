package store

import (
	"context"
	"sync"
)

// Backend persists the single opaque settings blob.
//
// Get reports found=false when nothing has been stored yet. Implementations
// must make Set atomic: a concurrent Get sees either the old or the new blob.
type Backend interface {
	Get(ctx context.Context) (blob string, found bool, err error)
	Set(ctx context.Context, blob string) error
}

// Watcher is implemented by backends that can report external changes.
// Watch blocks until ctx is done, calling notify after each change.
type Watcher interface {
	Watch(ctx context.Context, notify func()) error
}

// MemoryBackend keeps the blob in process memory.
type MemoryBackend struct {
	mu    sync.Mutex
	blob  string
	found bool
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Get(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blob, m.found, nil
}

func (m *MemoryBackend) Set(ctx context.Context, blob string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = blob
	m.found = true
	return nil
}
