package services

import (
	"testing"

	"backend/models"
)

func TestDefaultResolverIgnoresOverrides(t *testing.T) {
	r := NewDefaultResolver()
	nearlyEqual(t, "default price", r.Price("Wood Post", 24.98, "posts"), 24.98)
	nearlyEqual(t, "default unit", r.UnitValue("Sewer Pipe", 10, "sewer"), 10)
}

func TestCustomResolverOverridePrecedence(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{ID: 7, Name: "Wood Post", Category: "posts", Price: 19.99},
	})
	nearlyEqual(t, "overridden", r.Price("Wood Post", 24.98, "posts"), 19.99)
	nearlyEqual(t, "no override", r.Price("Privacy Picket", 3.48, "pickets"), 3.48)
}

func TestResolverNameMatchIsCaseInsensitive(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "ready-mix concrete", Category: "concrete", Price: 200},
	})
	nearlyEqual(t, "case fold", r.Price("Ready-Mix Concrete", 185, "concrete"), 200)
}

func TestResolverCategoryFilter(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Rebar #4", Category: "reinforcement", Price: 7.50},
	})
	nearlyEqual(t, "matching category", r.Price("Rebar #4", 8.99, "reinforcement"), 7.50)
	nearlyEqual(t, "wrong category", r.Price("Rebar #4", 8.99, "concrete"), 8.99)
	// A lookup without a category matches on name alone.
	nearlyEqual(t, "no category", r.Price("Rebar #4", 8.99), 7.50)
}

func TestResolverSkipsArchivedRows(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Wood Post", Category: "posts", Price: 12.00, Archived: true},
	})
	nearlyEqual(t, "archived ignored", r.Price("Wood Post", 24.98, "posts"), 24.98)
}

func TestResolverNewestRowWins(t *testing.T) {
	// Snapshot is ordered newest first; the first match is authoritative.
	r := NewCustomResolver([]models.CustomMaterial{
		{ID: 9, Name: "Wood Post", Category: "posts", Price: 21.00},
		{ID: 3, Name: "Wood Post", Category: "posts", Price: 18.00},
	})
	nearlyEqual(t, "newest wins", r.Price("Wood Post", 24.98, "posts"), 21.00)
}

func TestResolverUnitValueFromSpec(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Vinyl Siding", Category: "siding", Price: 175, UnitSpec: "100 sq ft"},
		{Name: "Sewer Pipe", Category: "sewer", Price: 22.50, UnitSpec: "per stick"},
	})
	nearlyEqual(t, "parsed unit", r.UnitValue("Vinyl Siding", 100, "siding"), 100)
	// Unparseable spec falls back to the default conversion.
	nearlyEqual(t, "bad spec", r.UnitValue("Sewer Pipe", 10, "sewer"), 10)
}

func TestParseUnitSpec(t *testing.T) {
	cases := []struct {
		spec string
		want float64
		ok   bool
	}{
		{"100 sq ft", 100, true},
		{"12.5 lf", 12.5, true},
		{"per 50 sq ft sheet", 50, true},
		{"each", 0, false},
		{"0 sq ft", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseUnitSpec(c.spec)
		if ok != c.ok {
			t.Fatalf("parseUnitSpec(%q) ok = %v, want %v", c.spec, ok, c.ok)
		}
		if ok {
			nearlyEqual(t, "parseUnitSpec("+c.spec+")", got, c.want)
		}
	}
}

func TestResolverFetchErrDegradesToDefaults(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Wood Post", Category: "posts", Price: 19.99},
	})
	r.FetchErr = errFake
	nearlyEqual(t, "degraded", r.Price("Wood Post", 24.98, "posts"), 24.98)
}

var errFake = &ValidationError{Field: "x", Reason: "fake"}

func TestMaterialCacheStaleStoreDiscarded(t *testing.T) {
	c := &materialCache{
		nextGen: make(map[catalogKey]uint64),
		stored:  make(map[catalogKey]uint64),
		entries: make(map[catalogKey][]models.CustomMaterial),
	}
	key := catalogKey{userID: 1, trade: "fencing"}

	genOld := c.begin(key)
	genNew := c.begin(key)

	c.store(key, genNew, []models.CustomMaterial{{Name: "new", Price: 2}})
	c.store(key, genOld, []models.CustomMaterial{{Name: "old", Price: 1}})

	rows, ok := c.get(key)
	if !ok || len(rows) != 1 || rows[0].Name != "new" {
		t.Fatalf("stale store overwrote newer rows: %+v", rows)
	}
}

func TestMaterialCacheInvalidate(t *testing.T) {
	c := &materialCache{
		nextGen: make(map[catalogKey]uint64),
		stored:  make(map[catalogKey]uint64),
		entries: make(map[catalogKey][]models.CustomMaterial),
	}
	key := catalogKey{userID: 4, trade: "tile"}
	gen := c.begin(key)
	c.store(key, gen, []models.CustomMaterial{{Name: "Tile 12x12", Price: 30}})

	if _, ok := c.get(key); !ok {
		t.Fatal("expected cached rows before invalidate")
	}
	c.invalidate(key)
	if _, ok := c.get(key); ok {
		t.Fatal("expected cache miss after invalidate")
	}

	// A fresh load after invalidation stores cleanly.
	gen = c.begin(key)
	c.store(key, gen, []models.CustomMaterial{{Name: "Tile 12x12", Price: 28}})
	rows, ok := c.get(key)
	if !ok || rows[0].Price != 28 {
		t.Fatalf("reload after invalidate failed: %+v", rows)
	}
}
