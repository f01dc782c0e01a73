// Package session owns the per-process browsing state: filter input, sort
// mode, selection and favourites. Every mutator is synchronous; subscribers
// are told about each change before the mutator returns.
package session

import (
	"log/slog"
	"slices"

	"github.com/dulina20231254-glitch/urbannest/internal/catalog"
	"github.com/dulina20231254-glitch/urbannest/internal/favourites"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/query"
	"github.com/dulina20231254-glitch/urbannest/internal/selection"
)

// Listener receives the new state after every change.
type Listener func(Snapshot)

// Snapshot is everything the rendering layer needs after a change.
type Snapshot struct {
	Selection  selection.State
	Input      query.Input
	Criteria   query.Criteria
	SortMode   query.SortMode
	Visible    []model.Listing
	Favourites []model.Listing
	Total      int
}

// Session is the single-user browsing state over one catalog store.
type Session struct {
	store      *catalog.Store
	favourites *favourites.Set
	logger     *slog.Logger
	listeners  []subscription
	input      query.Input
	sortMode   query.SortMode
	selection  selection.Machine
	nextID     int

	initialInput query.Input
	initialSort  query.SortMode
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state change records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSortMode sets the initial sort mode.
func WithSortMode(mode query.SortMode) Option {
	return func(s *Session) {
		s.sortMode = mode
	}
}

// WithInput sets the initial filter input.
func WithInput(in query.Input) Option {
	return func(s *Session) {
		s.input = in
	}
}

// New creates a session over store in its initial state: no filters, no
// sorting, browsing, no favourites. WithInput and WithSortMode change the
// initial filters and sort, and Reset returns to them.
func New(store *catalog.Store, opts ...Option) *Session {
	s := &Session{
		store:      store,
		favourites: favourites.New(),
		sortMode:   query.SortNone,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.initialInput = s.input
	s.initialSort = s.sortMode
	return s
}

// Subscribe registers l to be called after every state change. Listeners run
// in subscription order. The returned function removes the subscription.
func (s *Session) Subscribe(l Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// VisibleListings returns the filtered, sorted listings. It is recomputed
// from the store on every call.
func (s *Session) VisibleListings() []model.Listing {
	return query.Run(s.store, s.input, s.sortMode)
}

// Favourites returns saved listings in the order they were added.
func (s *Session) Favourites() []model.Listing {
	return s.favourites.List()
}

// IsFavourite reports whether id is saved.
func (s *Session) IsFavourite(id string) bool {
	return s.favourites.Contains(id)
}

// Selection returns the current browsing/viewing state.
func (s *Session) Selection() selection.State {
	return s.selection.Current()
}

// Input returns the raw filter input.
func (s *Session) Input() query.Input {
	return s.input
}

// SortMode returns the active sort mode.
func (s *Session) SortMode() query.SortMode {
	return s.sortMode
}

// Store returns the underlying catalog.
func (s *Session) Store() *catalog.Store {
	return s.store
}

// Snapshot captures the full current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Input:      s.input,
		Criteria:   query.Sanitize(s.input),
		SortMode:   s.sortMode,
		Visible:    s.VisibleListings(),
		Favourites: s.Favourites(),
		Selection:  s.Selection(),
		Total:      s.store.Len(),
	}
}

func (s *Session) notify(action string, attrs ...any) {
	s.logger.Debug("Session updated", append([]any{"action", action}, attrs...)...)
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, sub := range slices.Clone(s.listeners) {
		sub.fn(snap)
	}
}
