package content

import (
	"fmt"

	"github.com/Iron-Ham/feeflow/internal/errors"
)

// State is the lifecycle position of one cache entry.
//
//	NotRequested -> Loading -> Loaded | FallbackLoaded
//
// Loaded and FallbackLoaded are terminal.
type State int

const (
	NotRequested State = iota
	Loading
	Loaded
	FallbackLoaded
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case NotRequested:
		return "not_requested"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case FallbackLoaded:
		return "fallback_loaded"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible from s.
func (s State) Terminal() bool {
	return s == Loaded || s == FallbackLoaded
}

// Entry is the cached material for one category.
type Entry struct {
	State State
	Text  string
}

// Cache holds at most one entry per category for a single detail-view
// session. It is not safe for concurrent use; the loader only touches it from
// the UI goroutine.
type Cache struct {
	entries [categoryCount]Entry
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the entry for c. ok is false while c has not been requested.
func (c *Cache) Get(cat Category) (Entry, bool) {
	if !cat.Valid() {
		return Entry{}, false
	}
	e := c.entries[cat]
	return e, e.State != NotRequested
}

// BeginLoad moves c from NotRequested to Loading and reports whether it did.
// A false return means a fetch is already in flight or the entry is final,
// and the caller must not fetch again.
func (c *Cache) BeginLoad(cat Category) bool {
	if !cat.Valid() || c.entries[cat].State != NotRequested {
		return false
	}
	c.entries[cat].State = Loading
	return true
}

// Resolve stores the text for a loading entry. Resolving an entry that is not
// Loading is rejected so a late result can never replace settled text.
func (c *Cache) Resolve(cat Category, text string, viaFallback bool) error {
	if !cat.Valid() {
		return fmt.Errorf("resolve %d: %w", int(cat), errors.ErrUnknownCategory)
	}
	e := &c.entries[cat]
	if e.State != Loading {
		return fmt.Errorf("resolve %s from %s: %w", cat, e.State, errors.ErrNotLoading)
	}
	e.Text = text
	e.State = Loaded
	if viaFallback {
		e.State = FallbackLoaded
	}
	return nil
}

// Len returns how many categories have been requested.
func (c *Cache) Len() int {
	n := 0
	for _, e := range c.entries {
		if e.State != NotRequested {
			n++
		}
	}
	return n
}
