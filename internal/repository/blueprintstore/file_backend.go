package blueprintstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"archsmith/internal/blueprint"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []blueprint.Document
		if err := json.Unmarshal(b, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			row = normalizeDoc(row)
			if row.ID == "" {
				continue
			}
			s.byID[row.ID] = row
		}
	})
}

func (s *Store) saveFile() error {
	s.mu.RLock()
	rows := make([]blueprint.Document, 0, len(s.byID))
	for _, doc := range s.byID {
		rows = append(rows, doc)
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *Store) getFile(id string) (blueprint.Document, bool) {
	s.ensureLoadedFile()
	key := strings.TrimSpace(id)
	if key == "" {
		return blueprint.Document{}, false
	}
	s.mu.RLock()
	doc, ok := s.byID[key]
	s.mu.RUnlock()
	return doc, ok
}

func (s *Store) putFile(doc blueprint.Document) error {
	s.ensureLoadedFile()
	s.mu.Lock()
	s.byID[doc.ID] = doc
	s.mu.Unlock()
	return s.saveFile()
}

func (s *Store) listFile(limit int) ([]Summary, error) {
	s.ensureLoadedFile()
	s.mu.RLock()
	out := make([]Summary, 0, len(s.byID))
	for _, doc := range s.byID {
		out = append(out, summarize(doc))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
