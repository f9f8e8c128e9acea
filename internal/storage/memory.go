package storage

import (
	"context"
	"sync"
)

// MemoryGateway keeps snapshots in process memory. Used by tests and when the
// service runs with no persistence backend configured.
type MemoryGateway struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{data: make(map[string][]byte)}
}

var _ Gateway = (*MemoryGateway)(nil)

// Load retrieves the snapshot stored under key.
func (g *MemoryGateway) Load(ctx context.Context, key string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	data, ok := g.data[key]
	if !ok {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores the snapshot under key.
func (g *MemoryGateway) Save(ctx context.Context, key string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	g.data[key] = stored
	return nil
}

// Delete removes the snapshot stored under key.
func (g *MemoryGateway) Delete(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.data, key)
	return nil
}
