// Package blueprintstore persists finished blueprints. It runs against a
// Postgres database when a DSN is configured and falls back to a single JSON
// state file otherwise, so local runs need no infrastructure.
package blueprintstore

import (
	"database/sql"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"archsmith/internal/blueprint"
)

type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]blueprint.Document

	schemaOnce sync.Once
	schemaErr  error

	docCache *lru.Cache[string, blueprint.Document]
}

// New returns a file-backed store rooted at path.
func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]blueprint.Document),
	}
}

// NewPostgres connects to the database and verifies it is reachable.
func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, blueprint.Document](1024)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{
		db:       db,
		docCache: cache,
	}, nil
}

// NewFromEnv picks Postgres when BLUEPRINT_DATABASE_URL is set and reachable,
// and the file backend at path otherwise.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("BLUEPRINT_DATABASE_URL"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

// EnsureReady loads the file state or creates the database schema.
func (s *Store) EnsureReady() {
	if s == nil {
		return
	}
	if s.db != nil {
		_ = s.ensureSchema()
		return
	}
	s.ensureLoadedFile()
}

// Get fetches one blueprint by id.
func (s *Store) Get(id string) (blueprint.Document, bool) {
	if s == nil {
		return blueprint.Document{}, false
	}
	if s.db != nil {
		if s.docCache != nil {
			if cached, ok := s.docCache.Get(strings.TrimSpace(id)); ok {
				return cached, true
			}
		}
		doc, ok := s.getDB(id)
		if ok && s.docCache != nil {
			s.docCache.Add(doc.ID, doc)
		}
		return doc, ok
	}
	return s.getFile(id)
}

// Put stores or replaces one blueprint.
func (s *Store) Put(doc blueprint.Document) error {
	if s == nil {
		return nil
	}
	doc = normalizeDoc(doc)
	if doc.ID == "" {
		return nil
	}
	if s.db != nil {
		err := s.putDB(doc)
		if err == nil && s.docCache != nil {
			s.docCache.Remove(doc.ID)
		}
		return err
	}
	return s.putFile(doc)
}

// List returns summaries of stored blueprints, newest first. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]Summary, error) {
	if s == nil {
		return nil, nil
	}
	if s.db != nil {
		return s.listDB(limit)
	}
	return s.listFile(limit)
}

// Close releases the database handle. File-backed stores have nothing to
// release.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
