// Package tui is the interactive listing browser. It renders a session and
// forwards user actions to it; all browsing state lives in the session.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/session"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/components"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

// State represents the current state of the TUI.
type State int

const (
	StateBrowse State = iota
	StateFilter
	StateFavourites
	StateDetail
	StateHelp
)

func (s State) String() string {
	switch s {
	case StateFilter:
		return "Filter"
	case StateFavourites:
		return "Favourites"
	case StateDetail:
		return "Detail"
	case StateHelp:
		return "Help"
	default:
		return "Browse"
	}
}

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	session     *session.Session
	watch       *watcher
	unsubscribe func()
	snapshot    session.Snapshot
	help        help.Model
	config      Config
	keymap      KeyMap
	table       components.ListingTableModel
	filters     components.FilterBarModel
	detail      components.DetailModel
	favourites  components.FavouritesModel
	width       int
	height      int
	state       State
	returnTo    State
	quitting    bool
}

// New creates a model over sess and subscribes it to session changes.
// Call Close to drop the subscription.
func New(sess *session.Session, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &watcher{}
	m := Model{
		theme:      cfg.Theme,
		session:    sess,
		watch:      w,
		config:     cfg,
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		table:      components.NewListingTable(cfg.Theme, cfg.CurrencySymbol),
		filters:    components.NewFilterBar(cfg.Theme),
		detail:     components.NewDetail(cfg.Theme, cfg.CurrencySymbol),
		favourites: components.NewFavourites(cfg.Theme, cfg.CurrencySymbol),
		width:      cfg.Width,
		height:     cfg.Height,
		state:      StateBrowse,
		returnTo:   StateBrowse,
	}
	m.unsubscribe = sess.Subscribe(w.notify)
	m.handleResize()
	m.apply(sess.Snapshot())
	return m
}

// Close removes the session subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Catch up with changes made to the session outside the model.
	m.sync()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.ListingChosenMsg:
		m.mutate(func(s *session.Session) { s.SelectListing(msg.ID) })
		return m, nil

	case components.BackToListMsg:
		m.mutate((*session.Session).ClearSelection)
		return m, nil

	case components.NextImageMsg:
		m.mutate((*session.Session).NextImage)
		return m, nil

	case components.PrevImageMsg:
		m.mutate((*session.Session).PrevImage)
		return m, nil

	case components.SelectImageMsg:
		m.mutate(func(s *session.Session) { s.SelectGalleryIndex(msg.Index) })
		return m, nil

	case components.AddFavouriteMsg:
		m.mutate((*session.Session).AddSelectedToFavourites)
		return m, nil

	case components.RemoveFavouriteMsg:
		m.mutate(func(s *session.Session) { s.RemoveFavourite(msg.ID) })
		return m, nil

	case components.ClearFavouritesMsg:
		m.mutate((*session.Session).ClearFavourites)
		return m, nil

	case components.FilterChangedMsg:
		m.mutate(func(s *session.Session) { s.SetFilter(msg.Field, msg.Value) })
		return m, nil

	case components.FilterDoneMsg, components.LeaveFavouritesMsg:
		m.state = StateBrowse
		return m, nil
	}

	return m.delegate(msg)
}

// mutate runs fn against the session and applies the result before the next
// message is handled, so a key pressed straight after sees the new state.
func (m *Model) mutate(fn func(*session.Session)) {
	fn(m.session)
	m.sync()
}

// sync applies the snapshot parked by the watcher, if any.
func (m *Model) sync() {
	if snap, ok := m.watch.take(); ok {
		m.apply(snap)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateFilter, StateFavourites, StateDetail:
		if m.state == StateDetail && key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.delegate(msg)

	case StateHelp:
		if key.Matches(msg, m.keymap.Help) || msg.String() == "esc" || key.Matches(msg, m.keymap.Quit) {
			m.state = m.returnTo
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.returnTo = m.state
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.Filter):
		m.state = StateFilter
		return m, m.filters.Focus()

	case key.Matches(msg, m.keymap.Sort):
		next := m.snapshot.SortMode.Next()
		m.mutate(func(s *session.Session) { s.SetSortMode(next) })
		return m, nil

	case key.Matches(msg, m.keymap.ClearFilters):
		m.mutate((*session.Session).ClearFilters)
		return m, nil

	case key.Matches(msg, m.keymap.Favourite):
		id := m.table.SelectedID()
		m.mutate(func(s *session.Session) { s.AddFavourite(id) })
		return m, nil

	case key.Matches(msg, m.keymap.Favourites):
		if m.favourites.Visible() {
			m.favourites.Focus()
			m.state = StateFavourites
		}
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.mutate((*session.Session).Reset)
		return m, nil
	}

	return m.delegate(msg)
}

// delegate routes a message to the component that owns the current state.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateBrowse:
		m.table, cmd = m.table.Update(msg)
	case StateFilter:
		m.filters, cmd = m.filters.Update(msg)
	case StateFavourites:
		m.favourites, cmd = m.favourites.Update(msg)
	case StateDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// apply pushes a session snapshot into every component and follows the
// selection in and out of the detail view.
func (m *Model) apply(snap session.Snapshot) {
	m.snapshot = snap

	m.table.SetListings(snap.Visible, snap.Favourites, snap.Total)
	m.table.SetStatus(snap.Criteria.ActiveCount(), snap.SortMode.Label())
	m.filters.SetInput(snap.Input, snap.Criteria)
	m.favourites.SetItems(snap.Favourites)

	sel := snap.Selection
	saved := isSaved(snap.Favourites, sel.Listing.ID)
	switch {
	case sel.IsViewing() && m.state != StateDetail:
		if m.state == StateBrowse || m.state == StateFavourites {
			m.returnTo = m.state
		} else {
			m.returnTo = StateBrowse
		}
		m.state = StateDetail
		m.detail.Enter(sel, saved)

	case sel.IsViewing():
		m.detail.Sync(sel, saved)

	case m.state == StateDetail:
		m.state = m.returnTo
		m.returnTo = StateBrowse
	}

	if m.state == StateFavourites && !m.favourites.Focused() {
		m.state = StateBrowse
	}
	m.handleResize()
}

func isSaved(favourites []model.Listing, id string) bool {
	return id != "" && slices.ContainsFunc(favourites, func(l model.Listing) bool {
		return l.ID == id
	})
}

func (m *Model) handleResize() {
	usable := max(20, m.width-4)
	m.filters.Resize(usable)
	m.favourites.Resize(usable)

	// title, filter bar, status bar and borders
	chrome := 10
	if m.favourites.Visible() {
		chrome += len(m.snapshot.Favourites) + 4
	}
	m.table.Resize(usable, max(5, m.height-chrome))
	m.detail.Resize(usable, m.height-4)
	m.help.Width = usable
}
