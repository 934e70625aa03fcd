package store

import (
	"context"
	"sync"
)

// Memory keeps records in process memory. Used when no backend is
// configured and in tests; state does not survive a restart.
type Memory struct {
	records
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	m := &Memory{data: map[string][]byte{}}
	m.records = records{kv: m}
	return m
}

func (m *Memory) set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *Memory) del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}
