package query

import "github.com/dulina20231254-glitch/urbannest/internal/model"

// Source is the read-only listing collection the engine runs over.
type Source interface {
	All() []model.Listing
}

// VisibleListings runs the full pipeline: normalise criteria, filter the
// store, then stable-sort. The result is recomputed on every call and is
// never nil.
func VisibleListings(store Source, c Criteria, mode SortMode) []model.Listing {
	c = Normalize(c)
	visible := Filter(store.All(), c)
	Sort(visible, mode)
	return visible
}

// Run is VisibleListings for raw user input.
func Run(store Source, in Input, mode SortMode) []model.Listing {
	return VisibleListings(store, Sanitize(in), mode)
}
