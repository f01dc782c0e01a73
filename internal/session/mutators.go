package session

import (
	"github.com/dulina20231254-glitch/urbannest/internal/query"
)

// SetFilter stores the raw text for one filter field. Invalid text is kept
// as typed and simply has no effect on the results.
func (s *Session) SetFilter(field query.Field, value string) {
	if s.input.Get(field) == value {
		return
	}
	s.input = s.input.With(field, value)
	s.notify("set_filter", "field", field.String(), "value", value)
}

// ClearFilters removes every filter constraint.
func (s *Session) ClearFilters() {
	if s.input == (query.Input{}) {
		return
	}
	s.input = query.Input{}
	s.notify("clear_filters")
}

// SetSortMode switches the active ordering.
func (s *Session) SetSortMode(mode query.SortMode) {
	if s.sortMode == mode {
		return
	}
	s.sortMode = mode
	s.notify("set_sort", "mode", string(mode))
}

// SelectListing opens the listing with id in the detail view. Unknown ids,
// or a selection while another listing is open, are ignored.
func (s *Session) SelectListing(id string) {
	l, ok := s.store.Get(id)
	if !ok {
		return
	}
	if s.selection.Select(l) {
		s.notify("select_listing", "id", id)
	}
}

// ClearSelection returns to the list view.
func (s *Session) ClearSelection() {
	if s.selection.Back() {
		s.notify("clear_selection")
	}
}

// SelectGalleryImage shows ref if it belongs to the open listing.
func (s *Session) SelectGalleryImage(ref string) {
	if s.selection.SelectImage(ref) {
		s.notify("select_image", "image", ref)
	}
}

// SelectGalleryIndex shows the i-th thumbnail of the open listing.
func (s *Session) SelectGalleryIndex(i int) {
	if s.selection.SelectImageIndex(i) {
		s.notify("select_image", "index", i)
	}
}

// NextImage advances the gallery.
func (s *Session) NextImage() {
	if s.selection.NextImage() {
		s.notify("next_image")
	}
}

// PrevImage steps the gallery back.
func (s *Session) PrevImage() {
	if s.selection.PrevImage() {
		s.notify("prev_image")
	}
}

// AddFavourite saves the listing with id. Adding twice is a no-op.
func (s *Session) AddFavourite(id string) {
	l, ok := s.store.Get(id)
	if !ok {
		return
	}
	if s.favourites.Add(l) {
		s.notify("add_favourite", "id", id)
	}
}

// AddSelectedToFavourites saves the listing open in the detail view.
func (s *Session) AddSelectedToFavourites() {
	current := s.selection.Current()
	if !current.IsViewing() {
		return
	}
	if s.favourites.Add(current.Listing) {
		s.notify("add_favourite", "id", current.Listing.ID)
	}
}

// RemoveFavourite drops id from favourites. Unknown ids are ignored.
func (s *Session) RemoveFavourite(id string) {
	if s.favourites.Remove(id) {
		s.notify("remove_favourite", "id", id)
	}
}

// ClearFavourites empties the favourites.
func (s *Session) ClearFavourites() {
	if s.favourites.Clear() {
		s.notify("clear_favourites")
	}
}

// Reset restores the initial state, as on a full reload.
func (s *Session) Reset() {
	pristine := s.input == s.initialInput && s.sortMode == s.initialSort &&
		!s.selection.Current().IsViewing() && s.favourites.Len() == 0
	if pristine {
		return
	}
	s.input = s.initialInput
	s.sortMode = s.initialSort
	s.selection.Reset()
	s.favourites.Clear()
	s.notify("reset")
}
