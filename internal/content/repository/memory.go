package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryRepo is an in-memory Repository used by unit tests. Documents are
// kept as raw field maps so merge writes behave exactly like the Mongo
// $set path; reads decode through bson so the same tags apply.
type MemoryRepo struct {
	mu         sync.RWMutex
	singletons map[string]map[string]interface{}
	projects   map[string]map[string]interface{}
	order      []string // project ids in insertion order
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		singletons: make(map[string]map[string]interface{}),
		projects:   make(map[string]map[string]interface{}),
	}
}

func (m *MemoryRepo) GetSingleton(ctx context.Context, key string, out interface{}) error {
	// decode while holding the lock: MergeSingleton mutates the stored map
	// in place
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.singletons[key]
	if !ok {
		return ErrNotFound
	}
	return decodeDoc(doc, out)
}

func (m *MemoryRepo) MergeSingleton(ctx context.Context, key string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.singletons[key]
	if !ok {
		doc = map[string]interface{}{"_id": key}
		m.singletons[key] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (m *MemoryRepo) ListProjects(ctx context.Context) ([]*content.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*content.Project, 0, len(m.order))
	for _, id := range m.order {
		var p content.Project
		if err := decodeDoc(m.projects[id], &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	// stable: order ties keep insertion order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MemoryRepo) InsertProject(ctx context.Context, p *content.Project) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	doc, err := encodeDoc(p)
	if err != nil {
		return "", err
	}
	m.projects[p.ID] = doc
	m.order = append(m.order, p.ID)
	return p.ID, nil
}

func (m *MemoryRepo) PatchProject(ctx context.Context, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.projects[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (m *MemoryRepo) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	for i, pid := range m.order {
		if pid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// bson round-trips keep the memory repo faithful to the Mongo field names.

func encodeDoc(v interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeDoc(doc map[string]interface{}, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
