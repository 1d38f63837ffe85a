package artifact

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps artifacts in process memory. It backs local runs and
// tests where no object storage is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Put(_ context.Context, blueprintID, path string, content []byte) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	key, err := objectKeyChecked(blueprintID, path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), content...)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, blueprintID, path string) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	key, err := objectKeyChecked(blueprintID, path)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (s *MemoryStore) List(_ context.Context, blueprintID string) ([]string, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	id := strings.TrimSpace(blueprintID)
	if id == "" {
		return nil, fmt.Errorf("blueprint_id is required")
	}
	prefix := id + "/"
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, 16)
	for key := range s.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, strings.TrimPrefix(key, prefix))
	}
	sort.Strings(out)
	return out, nil
}

// GetURL has nothing to hand out for in-memory content.
func (s *MemoryStore) GetURL(context.Context, string, string) (string, error) {
	return "", nil
}

func objectKeyChecked(blueprintID, path string) (string, error) {
	id := strings.TrimSpace(blueprintID)
	p := strings.TrimSpace(path)
	if id == "" {
		return "", fmt.Errorf("blueprint_id is required")
	}
	if p == "" {
		return "", fmt.Errorf("path is required")
	}
	return id + "/" + strings.TrimLeft(p, "/"), nil
}
