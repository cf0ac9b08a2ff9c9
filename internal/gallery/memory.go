package gallery

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
)

var ErrObjectNotFound = errors.New("object not found")

// MemoryStore is an in-memory BlobStore used by unit tests. Listing order
// is lexicographic by key, which for timestamp-prefixed gallery names means
// upload order.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[key] = b
	m.mu.Unlock()
	return m.PublicURL(key), nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := []string{}
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) PublicURL(key string) string {
	return "memory://bucket/" + key
}
