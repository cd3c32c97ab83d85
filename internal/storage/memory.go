package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Memory is a map-backed ObjectStorage used by tests and local
// development without an S3 endpoint.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *Memory) Save(_ context.Context, key string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	delete(m.types, key)
	return nil
}

func (m *Memory) DeleteBatch(_ context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.objects, key)
		delete(m.types, key)
	}
	return nil
}

func (m *Memory) WaitNotExists(_ context.Context, key string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[key]; ok {
		return fmt.Errorf("object %s still exists", key)
	}
	return nil
}

// Len reports how many objects are held. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

var _ ObjectStorage = (*Memory)(nil)
