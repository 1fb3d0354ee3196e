package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"backend/models"

	"gorm.io/gorm"
)

// ---------- Price resolution ----------
//
// Every calculator line item resolves its price through a Resolver. In
// "default" mode the resolver always answers with the built-in defaults; in
// "custom" mode it prefers the account's material overrides, entry by entry,
// and falls back to the default when no non-archived override matches.

// Resolver answers price and unit-value lookups against a catalog snapshot
// loaded once per pricing-mode activation. Lookups are pure and never fail;
// a catalog fetch error is carried out-of-band in FetchErr.
type Resolver struct {
	mode      models.PricingMode
	materials []models.CustomMaterial // newest first

	// FetchErr records a catalog load failure. The resolver then behaves
	// as if the mode were "default"; the caller decides how to surface it.
	FetchErr error
}

// NewDefaultResolver returns a resolver that always answers with defaults.
func NewDefaultResolver() *Resolver {
	return &Resolver{mode: models.PricingModeDefault}
}

// NewCustomResolver returns a resolver over an already-loaded override
// snapshot. The slice must be ordered newest first; when duplicate
// (name, category) rows exist the first match wins, so the newest row is
// authoritative.
func NewCustomResolver(materials []models.CustomMaterial) *Resolver {
	return &Resolver{mode: models.PricingModeCustom, materials: materials}
}

func (r *Resolver) match(name string, category ...string) *models.CustomMaterial {
	if r.mode != models.PricingModeCustom || r.FetchErr != nil {
		return nil
	}
	lower := strings.ToLower(name)
	for i := range r.materials {
		m := &r.materials[i]
		if m.Archived {
			continue
		}
		if strings.ToLower(m.Name) != lower {
			continue
		}
		if len(category) > 0 && category[0] != "" && m.Category != category[0] {
			continue
		}
		return m
	}
	return nil
}

// Price returns the override price for the material when a matching
// non-archived override exists, otherwise defaultPrice.
func (r *Resolver) Price(name string, defaultPrice float64, category ...string) float64 {
	if m := r.match(name, category...); m != nil {
		return m.Price
	}
	return defaultPrice
}

// UnitValue returns the numeric unit conversion parsed from the override's
// unit spec (e.g. "100 sq ft" -> 100), or defaultValue when no override
// matches or the spec does not parse.
func (r *Resolver) UnitValue(name string, defaultValue float64, category ...string) float64 {
	if m := r.match(name, category...); m != nil && m.UnitSpec != "" {
		if v, ok := parseUnitSpec(m.UnitSpec); ok {
			return v
		}
	}
	return defaultValue
}

var unitSpecNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// parseUnitSpec extracts the leading quantity from a free-text unit spec.
// The micro-format is "<number> <unit words>"; only the number matters here.
func parseUnitSpec(spec string) (float64, bool) {
	s := unitSpecNumber.FindString(spec)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ---------- Catalog cache ----------
//
// Override catalogs are fetched when a user activates custom pricing for a
// trade, then reused for every calculate call in the session. Reloads are
// last-write-wins: if a second load for the same (user, trade) starts while
// one is in flight, the most recent request's rows become authoritative.

type catalogKey struct {
	userID int
	trade  string
}

type materialCache struct {
	mu      sync.Mutex
	nextGen map[catalogKey]uint64
	stored  map[catalogKey]uint64
	entries map[catalogKey][]models.CustomMaterial
}

var catalog = &materialCache{
	nextGen: make(map[catalogKey]uint64),
	stored:  make(map[catalogKey]uint64),
	entries: make(map[catalogKey][]models.CustomMaterial),
}

func (c *materialCache) begin(key catalogKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextGen[key]++
	return c.nextGen[key]
}

func (c *materialCache) store(key catalogKey, gen uint64, rows []models.CustomMaterial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.stored[key] {
		// A newer load already finished; discard this stale result.
		return
	}
	c.stored[key] = gen
	c.entries[key] = rows
}

func (c *materialCache) get(key catalogKey) ([]models.CustomMaterial, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows, ok := c.entries[key]
	return rows, ok
}

func (c *materialCache) invalidate(key catalogKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	delete(c.stored, key)
}

// InvalidateMaterialCache drops the cached catalog for a user and trade.
// Material CRUD handlers call this after every write.
func InvalidateMaterialCache(userID int, trade string) {
	catalog.invalidate(catalogKey{userID: userID, trade: trade})
}

// LoadResolver builds the resolver for one calculate call. Default mode
// never touches the database. Custom mode serves from the session cache
// when possible; on a fetch failure it returns a degraded resolver that
// answers with defaults and carries the error for out-of-band reporting.
func LoadResolver(gdb *gorm.DB, userID int, trade string, mode models.PricingMode) *Resolver {
	if mode != models.PricingModeCustom {
		return NewDefaultResolver()
	}

	key := catalogKey{userID: userID, trade: trade}
	if rows, ok := catalog.get(key); ok {
		return NewCustomResolver(rows)
	}

	gen := catalog.begin(key)

	var gormRows []models.CustomMaterialGorm
	err := gdb.
		Where("user_id = ? AND trade = ? AND archived = ?", userID, trade, false).
		Order("id DESC").
		Find(&gormRows).Error
	if err != nil {
		r := NewDefaultResolver()
		r.FetchErr = fmt.Errorf("failed to load material overrides: %w", err)
		return r
	}

	rows := make([]models.CustomMaterial, 0, len(gormRows))
	for _, g := range gormRows {
		rows = append(rows, models.CustomMaterial{
			ID:       g.ID,
			Trade:    g.Trade,
			Name:     g.Name,
			Category: g.Category,
			Price:    g.Price,
			UnitSpec: g.UnitSpec,
			Archived: g.Archived,
		})
	}
	catalog.store(key, gen, rows)

	return NewCustomResolver(rows)
}
