package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

// ListingChosenMsg is sent when the user opens a listing.
type ListingChosenMsg struct {
	ID string
}

// ListingTableModel shows the visible listings as a grid.
type ListingTableModel struct {
	theme      themes.Theme
	favourites map[string]struct{}
	symbol     string
	sortLabel  string
	listings   []model.Listing
	table      table.Model
	total      int
	filters    int
	width      int
	height     int
}

// NewListingTable creates an empty listing table.
func NewListingTable(theme themes.Theme, currencySymbol string) ListingTableModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := ListingTableModel{
		table:      t,
		theme:      theme,
		symbol:     currencySymbol,
		favourites: make(map[string]struct{}),
		width:      80,
		height:     16,
	}
	m.updateColumnWidths()
	return m
}

// SetListings replaces the rows. The cursor stays on the same listing when
// it is still visible.
func (m *ListingTableModel) SetListings(listings, favourites []model.Listing, total int) {
	current := m.SelectedID()

	m.listings = listings
	m.total = total
	m.favourites = make(map[string]struct{}, len(favourites))
	for _, f := range favourites {
		m.favourites[f.ID] = struct{}{}
	}
	m.table.SetRows(m.buildRows())

	cursor := 0
	for i, l := range listings {
		if l.ID == current {
			cursor = i
			break
		}
	}
	m.table.SetCursor(cursor)
}

// SetStatus sets the header summary of active filters and sort.
func (m *ListingTableModel) SetStatus(activeFilters int, sortLabel string) {
	m.filters = activeFilters
	m.sortLabel = sortLabel
}

// SelectedID returns the id of the highlighted listing, or "" when empty.
func (m ListingTableModel) SelectedID() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.listings) {
		return ""
	}
	return m.listings[i].ID
}

// Len returns the number of rows.
func (m ListingTableModel) Len() int {
	return len(m.listings)
}

// Update handles navigation and selection.
func (m ListingTableModel) Update(msg tea.Msg) (ListingTableModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		if id := m.SelectedID(); id != "" {
			return m, func() tea.Msg {
				return ListingChosenMsg{ID: id}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a header and an empty-state message.
func (m ListingTableModel) View() string {
	header := m.renderHeader()
	if len(m.listings) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render("No listings match the current filters. Press c to clear them.")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View())
}

func (m ListingTableModel) renderHeader() string {
	title := m.theme.Bold.Render("Properties")

	status := fmt.Sprintf("%d of %d listings", len(m.listings), m.total)
	if m.filters > 0 {
		status += fmt.Sprintf(" | %d filter(s)", m.filters)
	}
	if m.sortLabel != "" {
		status += " | Sort: " + m.sortLabel
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Subtitle.Render(status))
}

func (m ListingTableModel) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(m.listings))
	for _, l := range m.listings {
		mark := " "
		if _, ok := m.favourites[l.ID]; ok {
			mark = "★"
		}
		rows = append(rows, table.Row{
			mark,
			themes.GetTypeIcon(string(l.Type)) + " " + string(l.Type),
			cli.FormatPrice(l.Price, m.symbol),
			strconv.Itoa(l.Bedrooms),
			l.Postcode,
			l.DateAdded.String(),
			truncate(l.ShortDescription, 60),
		})
	}
	return rows
}

// Resize updates the component size.
func (m *ListingTableModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// title + status + column header and its border
	m.table.SetHeight(max(1, height-4))
	m.updateColumnWidths()
}

func (m *ListingTableModel) updateColumnWidths() {
	available := max(m.width-4, 70)

	fixed := 2 + 12 + 12 + 5 + 10 + 11
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Type", Width: 12},
		{Title: "Price", Width: 12},
		{Title: "Beds", Width: 5},
		{Title: "Postcode", Width: 10},
		{Title: "Added", Width: 11},
		{Title: "Summary", Width: max(12, available-fixed-14)},
	}

	m.table.SetColumns(columns)
}

func truncate(s string, maxLen int) string {
	if maxLen <= 3 || len([]rune(s)) <= maxLen {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:maxLen-3])) + "..."
}
