package llmprovider

import (
	"fmt"
	"sort"
	"time"
)

// DefaultCallTimeout bounds a single provider call when the entry sets none.
const DefaultCallTimeout = 30 * time.Second

// Entry is one registered provider.
type Entry struct {
	ID          string
	DisplayName string
	Priority    int
	Enabled     bool
	Timeout     time.Duration
	Provider    Provider
}

// Registry is the ordered, read-only list of providers built once at startup.
// Order is priority ascending; equal priorities keep registration order.
type Registry struct {
	entries []Entry
}

// NewRegistry validates and orders the given entries.
func NewRegistry(entries ...Entry) (*Registry, error) {
	seen := make(map[string]bool, len(entries))
	ordered := make([]Entry, 0, len(entries))

	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("provider %d: id is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProvider, e.ID)
		}
		seen[e.ID] = true

		if e.Enabled && e.Provider == nil {
			return nil, fmt.Errorf("provider %s: enabled without adapter", e.ID)
		}
		if e.Timeout <= 0 {
			e.Timeout = DefaultCallTimeout
		}
		if e.DisplayName == "" {
			e.DisplayName = e.ID
		}
		ordered = append(ordered, e)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	return &Registry{entries: ordered}, nil
}

// Entries returns a copy of every entry in iteration order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Enabled returns the enabled entries in iteration order.
func (r *Registry) Enabled() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}

// EnabledCount returns how many entries can be called.
func (r *Registry) EnabledCount() int {
	return len(r.Enabled())
}
