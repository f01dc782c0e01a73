package components

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/selection"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

// DetailTab is one of the tabs under the gallery.
type DetailTab int

// Detail tabs.
const (
	TabDescription DetailTab = iota
	TabFloorPlan
	TabLocation
)

var detailTabs = []DetailTab{TabDescription, TabFloorPlan, TabLocation}

func (t DetailTab) String() string {
	switch t {
	case TabFloorPlan:
		return "Floor Plan"
	case TabLocation:
		return "Location"
	default:
		return "Description"
	}
}

// BackToListMsg is sent when the user leaves the detail view.
type BackToListMsg struct{}

// NextImageMsg asks for the next gallery image.
type NextImageMsg struct{}

// PrevImageMsg asks for the previous gallery image.
type PrevImageMsg struct{}

// SelectImageMsg asks for a gallery image by position.
type SelectImageMsg struct {
	Index int
}

// AddFavouriteMsg asks for the listing on screen to be saved.
type AddFavouriteMsg struct{}

type detailKeyMap struct {
	Back      key.Binding
	NextImage key.Binding
	PrevImage key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Favourite key.Binding
}

var detailKeys = detailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back to list"),
	),
	NextImage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next image"),
	),
	PrevImage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous image"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Favourite: key.NewBinding(
		key.WithKeys("f", "a"),
		key.WithHelp("f", "add to favourites"),
	),
}

// DetailModel shows one listing: facts, gallery, tabs and the favourite
// button.
type DetailModel struct {
	theme     themes.Theme
	symbol    string
	state     selection.State
	viewport  viewport.Model
	tab       DetailTab
	width     int
	height    int
	favourite bool
}

// NewDetail creates an empty detail view.
func NewDetail(theme themes.Theme, currencySymbol string) DetailModel {
	return DetailModel{
		theme:    theme,
		symbol:   currencySymbol,
		viewport: viewport.New(60, 6),
		width:    80,
		height:   24,
	}
}

// Enter shows a freshly selected listing on the Description tab.
func (m *DetailModel) Enter(state selection.State, favourite bool) {
	m.tab = TabDescription
	m.Sync(state, favourite)
}

// Sync updates the listing state without touching the active tab.
func (m *DetailModel) Sync(state selection.State, favourite bool) {
	m.state = state
	m.favourite = favourite
	m.refreshContent()
}

// Tab returns the active tab.
func (m DetailModel) Tab() DetailTab {
	return m.tab
}

// Update handles detail view keys.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, detailKeys.Back):
		return m, func() tea.Msg { return BackToListMsg{} }

	case key.Matches(keyMsg, detailKeys.NextImage):
		return m, func() tea.Msg { return NextImageMsg{} }

	case key.Matches(keyMsg, detailKeys.PrevImage):
		return m, func() tea.Msg { return PrevImageMsg{} }

	case key.Matches(keyMsg, detailKeys.NextTab):
		m.tab = detailTabs[(int(m.tab)+1)%len(detailTabs)]
		m.refreshContent()
		return m, nil

	case key.Matches(keyMsg, detailKeys.PrevTab):
		m.tab = detailTabs[(int(m.tab)+len(detailTabs)-1)%len(detailTabs)]
		m.refreshContent()
		return m, nil

	case key.Matches(keyMsg, detailKeys.Favourite):
		if m.favourite {
			return m, nil
		}
		return m, func() tea.Msg { return AddFavouriteMsg{} }
	}

	if r := keyMsg.Runes; keyMsg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
		index := int(r[0] - '1')
		return m, func() tea.Msg { return SelectImageMsg{Index: index} }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m DetailModel) View() string {
	l := m.state.Listing
	if l.ID == "" {
		return ""
	}

	title := m.theme.Title.Render(fmt.Sprintf("%s %s in %s",
		themes.GetTypeIcon(string(l.Type)), l.Type, l.Postcode))

	sections := []string{
		title,
		m.renderFacts(l),
		"",
		m.renderGallery(l),
		"",
		m.renderTabs(),
		m.viewport.View(),
		"",
		m.renderButton(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderFacts(l model.Listing) string {
	label := m.theme.Bold.Width(12)
	value := m.theme.Normal

	row := func(name, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(name), value.Render(v))
	}

	rows := []string{
		row("Price", cli.FormatPrice(l.Price, m.symbol)),
		row("Bedrooms", cli.FormatBedrooms(l.Bedrooms)),
		row("Postcode", l.Postcode),
		row("Added", l.DateAdded.String()),
	}
	if l.ShortDescription != "" {
		rows = append(rows, m.theme.Subtitle.Render(l.ShortDescription))
	}
	return strings.Join(rows, "\n")
}

func (m DetailModel) renderGallery(l model.Listing) string {
	current := m.state.CurrentImage()
	heading := m.theme.Bold.Render(fmt.Sprintf("Image %d of %d", m.state.ImageIndex+1, len(l.Images)))
	main := m.theme.RoundedBox.Render(current)

	thumbs := make([]string, 0, len(l.Images))
	for i := range l.Images {
		label := fmt.Sprintf("[%d]", i+1)
		if i == m.state.ImageIndex {
			thumbs = append(thumbs, m.theme.Selected.Render(label))
		} else {
			thumbs = append(thumbs, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, main, strings.Join(thumbs, " "))
}

func (m DetailModel) renderTabs() string {
	tabs := make([]string, 0, len(detailTabs))
	for _, t := range detailTabs {
		if t == m.tab {
			tabs = append(tabs, m.theme.TabActive.Render(t.String()))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m DetailModel) renderButton() string {
	if m.favourite {
		return m.theme.ButtonDisabled.Render("★ Added")
	}
	return m.theme.Button.Render("☆ Add to favourites") +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  press f")
}

func (m *DetailModel) refreshContent() {
	m.viewport.SetContent(TabContent(m.state.Listing, m.tab))
	m.viewport.GotoTop()
}

// TabContent returns the text shown under tab for l.
func TabContent(l model.Listing, tab DetailTab) string {
	switch tab {
	case TabFloorPlan:
		if l.FloorPlan == "" {
			return "No floor plan available."
		}
		return "Floor plan: " + l.FloorPlan

	case TabLocation:
		var lines []string
		if l.Location != "" {
			lines = append(lines, l.Location)
		}
		lines = append(lines, "Postcode: "+l.Postcode)
		if link := MapURL(l.Postcode); link != "" {
			lines = append(lines, "Map: "+link)
		}
		return strings.Join(lines, "\n")

	default:
		if l.LongDescription != "" {
			return l.LongDescription
		}
		if l.ShortDescription != "" {
			return l.ShortDescription
		}
		return "No description available."
	}
}

// MapURL returns a map search link for a postcode, or "" when it is blank.
func MapURL(postcode string) string {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "https",
		Host:     "www.google.com",
		Path:     "/maps/search/",
		RawQuery: url.Values{"api": {"1"}, "query": {postcode}}.Encode(),
	}
	return u.String()
}

// Resize updates the component dimensions.
func (m *DetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(20, width-4)
	// facts, gallery, tabs and button take roughly 18 lines
	m.viewport.Height = max(3, height-18)
}
