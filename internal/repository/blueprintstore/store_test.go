package blueprintstore

import (
	"path/filepath"
	"testing"
	"time"

	"archsmith/internal/blueprint"
	"archsmith/internal/tester"
	"archsmith/internal/types"
)

func doc(id string, created time.Time, idea string) blueprint.Document {
	return blueprint.Document{
		ID:        id,
		CreatedAt: created,
		UserInput: types.UserInput{
			BusinessIdea: idea,
			DetailLevel:  types.DetailDetailed,
			Platform:     types.PlatformAWS,
		},
		EstimatedTimeline: "3-4 months for MVP",
	}
}

func TestFilePutGet(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "blueprints.json"))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tester.NoErr(t, s.Put(doc("bp-1", base, "Meal planning for climbers")))

	got, ok := s.Get("bp-1")
	tester.True(t, ok, "stored blueprint should load")
	tester.Eq(t, "Meal planning for climbers", got.UserInput.BusinessIdea)
	tester.Eq(t, "3-4 months for MVP", got.EstimatedTimeline)

	_, ok = s.Get("missing")
	tester.False(t, ok)
	_, ok = s.Get("  ")
	tester.False(t, ok)
}

func TestFilePersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blueprints.json")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := New(path)
	tester.NoErr(t, first.Put(doc("bp-1", base, "A")))
	tester.NoErr(t, first.Put(doc("bp-2", base.Add(time.Hour), "B")))

	second := New(path)
	got, ok := second.Get("bp-2")
	tester.True(t, ok, "state file should reload")
	tester.Eq(t, "B", got.UserInput.BusinessIdea)

	sums, err := second.List(0)
	tester.NoErr(t, err)
	tester.Eq(t, 2, len(sums))
}

func TestListNewestFirst(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "blueprints.json"))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tester.NoErr(t, s.Put(doc("old", base, "old idea")))
	tester.NoErr(t, s.Put(doc("new", base.Add(2*time.Hour), "new idea")))
	tester.NoErr(t, s.Put(doc("mid", base.Add(time.Hour), "mid idea")))

	sums, err := s.List(0)
	tester.NoErr(t, err)
	if len(sums) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(sums))
	}
	tester.Eq(t, "new", sums[0].ID)
	tester.Eq(t, "mid", sums[1].ID)
	tester.Eq(t, "old", sums[2].ID)

	limited, err := s.List(2)
	tester.NoErr(t, err)
	tester.Eq(t, 2, len(limited))
	tester.Eq(t, "new", limited[0].ID)
}

func TestPutReplacesExisting(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "blueprints.json"))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tester.NoErr(t, s.Put(doc("bp-1", base, "v1")))
	tester.NoErr(t, s.Put(doc("bp-1", base, "v2")))

	got, _ := s.Get("bp-1")
	tester.Eq(t, "v2", got.UserInput.BusinessIdea)

	sums, err := s.List(0)
	tester.NoErr(t, err)
	tester.Eq(t, 1, len(sums))
}

func TestPutIgnoresEmptyID(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "blueprints.json"))
	tester.NoErr(t, s.Put(blueprint.Document{ID: "   "}))

	sums, err := s.List(0)
	tester.NoErr(t, err)
	tester.Eq(t, 0, len(sums))
}

func TestNilStoreIsInert(t *testing.T) {
	var s *Store
	tester.NoErr(t, s.Put(doc("x", time.Now(), "y")))
	_, ok := s.Get("x")
	tester.False(t, ok)
	sums, err := s.List(0)
	tester.NoErr(t, err)
	tester.Eq(t, 0, len(sums))
	tester.NoErr(t, s.Close())
}
