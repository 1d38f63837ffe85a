package blueprintstore

import (
	"encoding/json"
	"strings"

	"archsmith/internal/blueprint"
	"archsmith/internal/types"
)

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS blueprints (
  id TEXT PRIMARY KEY,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  business_idea TEXT NOT NULL DEFAULT '',
  detail_level TEXT NOT NULL DEFAULT '',
  platform TEXT NOT NULL DEFAULT '',
  document JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blueprints_created_at ON blueprints (created_at DESC);
`)
	})
	return s.schemaErr
}

func (s *Store) getDB(id string) (blueprint.Document, bool) {
	if err := s.ensureSchema(); err != nil {
		return blueprint.Document{}, false
	}
	key := strings.TrimSpace(id)
	if key == "" {
		return blueprint.Document{}, false
	}
	var raw []byte
	row := s.db.QueryRow(`SELECT document FROM blueprints WHERE id = $1`, key)
	if err := row.Scan(&raw); err != nil {
		return blueprint.Document{}, false
	}
	var doc blueprint.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return blueprint.Document{}, false
	}
	return normalizeDoc(doc), true
}

func (s *Store) putDB(doc blueprint.Document) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO blueprints (id, created_at, business_idea, detail_level, platform, document)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id)
DO UPDATE SET business_idea=EXCLUDED.business_idea,
  detail_level=EXCLUDED.detail_level,
  platform=EXCLUDED.platform,
  document=EXCLUDED.document`,
		doc.ID, doc.CreatedAt, doc.UserInput.BusinessIdea,
		string(doc.UserInput.DetailLevel), string(doc.UserInput.Platform), raw)
	return err
}

func scanSummaryDB(row rowScanner) (Summary, bool) {
	var sum Summary
	var detail, platform string
	if err := row.Scan(&sum.ID, &sum.CreatedAt, &sum.BusinessIdea, &detail, &platform); err != nil {
		return Summary{}, false
	}
	sum.DetailLevel = types.DetailLevel(detail)
	sum.Platform = types.Platform(platform)
	return sum, true
}

func (s *Store) listDB(limit int) ([]Summary, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	q := `SELECT id, created_at, business_idea, detail_level, platform
FROM blueprints ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		if sum, ok := scanSummaryDB(rows); ok {
			out = append(out, sum)
		}
	}
	return out, rows.Err()
}
