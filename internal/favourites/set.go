// Package favourites keeps the user's saved listings: an insertion-ordered
// set with at most one entry per listing id.
package favourites

import "github.com/dulina20231254-glitch/urbannest/internal/model"

// Set is an ordered, duplicate-free collection of listings. The zero value
// is an empty set ready for use.
type Set struct {
	ids   map[string]struct{}
	items []model.Listing
}

// New creates an empty set.
func New() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// Add appends l unless a listing with the same id is already saved.
// It reports whether the set changed.
func (s *Set) Add(l model.Listing) bool {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[l.ID]; ok {
		return false
	}
	s.ids[l.ID] = struct{}{}
	s.items = append(s.items, l.Clone())
	return true
}

// Remove deletes the entry for id. Unknown ids are ignored.
// It reports whether the set changed.
func (s *Set) Remove(id string) bool {
	if _, ok := s.ids[id]; !ok {
		return false
	}
	delete(s.ids, id)
	for i, l := range s.items {
		if l.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the set. It reports whether anything was removed.
func (s *Set) Clear() bool {
	changed := len(s.items) > 0
	s.items = nil
	s.ids = make(map[string]struct{})
	return changed
}

// Contains reports whether a listing with id is saved.
func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// List returns copies of the saved listings, first-added first.
func (s *Set) List() []model.Listing {
	out := make([]model.Listing, len(s.items))
	for i, l := range s.items {
		out[i] = l.Clone()
	}
	return out
}

// Len returns the number of saved listings.
func (s *Set) Len() int {
	return len(s.items)
}
