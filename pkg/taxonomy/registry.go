// Package taxonomy holds the fixed failure-mode catalog evaluation records
// reference. The registry is built once at startup and is read-only.
package taxonomy

import (
	"github.com/cockroachdb/errors"

	"evalvault/pkg/core"
)

// Registry resolves taxonomy ids against the built-in catalog.
type Registry struct {
	byID       map[int]core.TaxonomyEntry
	ordered    []core.TaxonomyEntry
	byCategory map[core.Category][]core.TaxonomyEntry
}

// NewRegistry builds a registry over the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{
		byID:       make(map[int]core.TaxonomyEntry, len(catalog)),
		ordered:    make([]core.TaxonomyEntry, 0, len(catalog)),
		byCategory: make(map[core.Category][]core.TaxonomyEntry),
	}
	for _, entry := range catalog {
		r.byID[entry.ID] = entry
		r.ordered = append(r.ordered, entry)
		r.byCategory[entry.Category] = append(r.byCategory[entry.Category], entry)
	}
	return r
}

// Lookup returns the entry for id, or NotFoundError for ids outside the catalog.
func (r *Registry) Lookup(id int) (core.TaxonomyEntry, error) {
	entry, ok := r.byID[id]
	if !ok {
		return core.TaxonomyEntry{}, errors.Wrapf(core.NotFoundError, "taxonomy id %d", id)
	}
	return entry, nil
}

// All returns every entry ordered by id.
func (r *Registry) All() []core.TaxonomyEntry {
	out := make([]core.TaxonomyEntry, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ByCategory returns the entries of one category ordered by id.
func (r *Registry) ByCategory(cat core.Category) []core.TaxonomyEntry {
	entries := r.byCategory[cat]
	out := make([]core.TaxonomyEntry, len(entries))
	copy(out, entries)
	return out
}

// Len returns the catalog size.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Validate reports the first unknown id among ids, if any.
func (r *Registry) Validate(ids ...int) error {
	for _, id := range ids {
		if _, err := r.Lookup(id); err != nil {
			return err
		}
	}
	return nil
}
