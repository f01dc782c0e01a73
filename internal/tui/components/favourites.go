package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

// RemoveFavouriteMsg asks for one saved listing to be removed.
type RemoveFavouriteMsg struct {
	ID string
}

// ClearFavouritesMsg asks for every saved listing to be removed.
type ClearFavouritesMsg struct{}

// LeaveFavouritesMsg is sent when focus goes back to the listing grid.
type LeaveFavouritesMsg struct{}

type favouritesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Remove key.Binding
	Clear  key.Binding
	Leave  key.Binding
}

var favouritesKeys = favouritesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove"),
	),
	Clear: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "clear all"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc", "v"),
		key.WithHelp("esc", "back to grid"),
	),
}

// FavouritesModel is the saved-listings strip shown above the grid.
type FavouritesModel struct {
	theme   themes.Theme
	symbol  string
	items   []model.Listing
	cursor  int
	width   int
	focused bool
}

// NewFavourites creates an empty favourites panel.
func NewFavourites(theme themes.Theme, currencySymbol string) FavouritesModel {
	return FavouritesModel{
		theme:  theme,
		symbol: currencySymbol,
		width:  80,
	}
}

// SetItems replaces the saved listings.
func (m *FavouritesModel) SetItems(items []model.Listing) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(0, len(items)-1)
	}
	if len(items) == 0 {
		m.focused = false
	}
}

// Visible reports whether the panel has anything to show.
func (m FavouritesModel) Visible() bool {
	return len(m.items) > 0
}

// Focus moves keyboard focus to the panel. It does nothing when empty.
func (m *FavouritesModel) Focus() {
	m.focused = len(m.items) > 0
}

// Blur returns focus to the grid.
func (m *FavouritesModel) Blur() {
	m.focused = false
}

// Focused reports whether the panel has keyboard focus.
func (m FavouritesModel) Focused() bool {
	return m.focused
}

// SelectedID returns the id under the cursor, or "".
func (m FavouritesModel) SelectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return ""
	}
	return m.items[m.cursor].ID
}

// Update handles panel keys while focused.
func (m FavouritesModel) Update(msg tea.Msg) (FavouritesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, favouritesKeys.Up):
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(keyMsg, favouritesKeys.Down):
		m.cursor = min(m.cursor+1, len(m.items)-1)

	case key.Matches(keyMsg, favouritesKeys.Open):
		if id := m.SelectedID(); id != "" {
			return m, func() tea.Msg { return ListingChosenMsg{ID: id} }
		}

	case key.Matches(keyMsg, favouritesKeys.Remove):
		if id := m.SelectedID(); id != "" {
			return m, func() tea.Msg { return RemoveFavouriteMsg{ID: id} }
		}

	case key.Matches(keyMsg, favouritesKeys.Clear):
		return m, func() tea.Msg { return ClearFavouritesMsg{} }

	case key.Matches(keyMsg, favouritesKeys.Leave):
		m.focused = false
		return m, func() tea.Msg { return LeaveFavouritesMsg{} }
	}

	return m, nil
}

// View renders the panel, or nothing when there are no favourites.
func (m FavouritesModel) View() string {
	if len(m.items) == 0 {
		return ""
	}

	title := m.theme.Bold.Render(fmt.Sprintf("★ Favourites (%d)", len(m.items)))

	lines := []string{title}
	for i, l := range m.items {
		line := fmt.Sprintf("%s %s, %s, %s",
			themes.GetTypeIcon(string(l.Type)), l.Type, l.Postcode, cli.FormatPrice(l.Price, m.symbol))
		if m.focused && i == m.cursor {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}

	if m.focused {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("enter open  x remove  X clear all  esc back"))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("v to manage favourites"))
	}

	return m.theme.RoundedBox.
		Width(max(20, m.width-2)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Resize updates the component width.
func (m *FavouritesModel) Resize(width int) {
	m.width = width
}
