package artifact

import (
	"context"
	"testing"

	"archsmith/internal/tester"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	tester.NoErr(t, s.Put(ctx, "bp-1", "blueprint.json", []byte(`{"id":"bp-1"}`)))
	tester.NoErr(t, s.Put(ctx, "bp-1", "/diagrams/database.mmd", []byte("erDiagram")))
	tester.NoErr(t, s.Put(ctx, "bp-2", "blueprint.json", []byte(`{"id":"bp-2"}`)))

	raw, err := s.Get(ctx, "bp-1", "blueprint.json")
	tester.NoErr(t, err)
	tester.Eq(t, `{"id":"bp-1"}`, string(raw))

	// Leading slashes normalize to the same key.
	raw, err = s.Get(ctx, "bp-1", "diagrams/database.mmd")
	tester.NoErr(t, err)
	tester.Eq(t, "erDiagram", string(raw))
}

func TestMemoryStoreListScopedByBlueprint(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	tester.NoErr(t, s.Put(ctx, "bp-1", "blueprint.md", []byte("# A")))
	tester.NoErr(t, s.Put(ctx, "bp-1", "blueprint.json", []byte("{}")))
	tester.NoErr(t, s.Put(ctx, "bp-2", "blueprint.json", []byte("{}")))

	paths, err := s.List(ctx, "bp-1")
	tester.NoErr(t, err)
	tester.Eq(t, []string{"blueprint.json", "blueprint.md"}, paths)
}

func TestMemoryStoreMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "bp-1", "blueprint.json")
	tester.ErrIs(t, err, ErrNotFound)
}

func TestMemoryStoreValidation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	tester.Err(t, s.Put(ctx, "", "a", nil))
	tester.Err(t, s.Put(ctx, "bp-1", "  ", nil))
	_, err := s.Get(ctx, " ", "a")
	tester.Err(t, err)
	_, err = s.List(ctx, "")
	tester.Err(t, err)
}

func TestMemoryStoreCopiesContent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	src := []byte("original")
	tester.NoErr(t, s.Put(ctx, "bp-1", "f", src))
	src[0] = 'X'

	raw, err := s.Get(ctx, "bp-1", "f")
	tester.NoErr(t, err)
	tester.Eq(t, "original", string(raw))
}

func TestContentTypeFor(t *testing.T) {
	tester.Eq(t, "application/json", contentTypeFor("blueprint.json"))
	tester.Eq(t, "text/markdown", contentTypeFor("blueprint.md"))
	tester.Eq(t, "text/plain", contentTypeFor("diagrams/api.mmd"))
	tester.Eq(t, "application/octet-stream", contentTypeFor("archive.tar"))
}
