package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dulina20231254-glitch/urbannest/internal/query"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

// FilterChangedMsg carries the new raw value of one filter field.
type FilterChangedMsg struct {
	Value string
	Field query.Field
}

// FilterDoneMsg is sent when the user leaves the filter bar.
type FilterDoneMsg struct{}

type filterKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Done key.Binding
}

var filterKeys = filterKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab/↓", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("Shift+Tab/↑", "previous field"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("Enter/Esc", "done"),
	),
}

var filterPlaceholders = map[query.Field]string{
	query.FieldType:         "Any, House, Flat, Bungalow",
	query.FieldMinPrice:     "e.g. 200000",
	query.FieldMaxPrice:     "e.g. 450000",
	query.FieldMinBedrooms:  "e.g. 2",
	query.FieldPostcode:     "e.g. BR1",
	query.FieldMinDateAdded: "YYYY-MM-DD",
}

// FilterBarModel edits the raw filter input, one text field per criterion.
type FilterBarModel struct {
	theme    themes.Theme
	criteria query.Criteria
	inputs   []textinput.Model
	focus    int
	width    int
	focused  bool
}

// NewFilterBar creates a filter bar with every field empty.
func NewFilterBar(theme themes.Theme) FilterBarModel {
	inputs := make([]textinput.Model, len(query.Fields))
	for i, f := range query.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = filterPlaceholders[f]
		ti.CharLimit = 32
		ti.Width = 14
		inputs[i] = ti
	}

	return FilterBarModel{
		theme:  theme,
		inputs: inputs,
		width:  80,
	}
}

// SetInput syncs the fields with the session's input and the criteria it
// sanitized to. Fields that already hold the value are left alone so the
// cursor does not jump while typing.
func (m *FilterBarModel) SetInput(in query.Input, c query.Criteria) {
	m.criteria = c
	for i, f := range query.Fields {
		if v := in.Get(f); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

// Focus starts editing at the current field.
func (m *FilterBarModel) Focus() tea.Cmd {
	m.focused = true
	return m.inputs[m.focus].Focus()
}

// Blur stops editing.
func (m *FilterBarModel) Blur() {
	m.focused = false
	m.inputs[m.focus].Blur()
}

// Focused reports whether the filter bar is being edited.
func (m FilterBarModel) Focused() bool {
	return m.focused
}

// FocusedField returns the field under the cursor.
func (m FilterBarModel) FocusedField() query.Field {
	return query.Fields[m.focus]
}

// Update handles field navigation and text entry.
func (m FilterBarModel) Update(msg tea.Msg) (FilterBarModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, filterKeys.Done):
		m.Blur()
		return m, func() tea.Msg { return FilterDoneMsg{} }

	case key.Matches(keyMsg, filterKeys.Next):
		return m, m.moveFocus(1)

	case key.Matches(keyMsg, filterKeys.Prev):
		return m, m.moveFocus(-1)
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	after := m.inputs[m.focus].Value()
	if after == before {
		return m, cmd
	}

	field := query.Fields[m.focus]
	changed := func() tea.Msg {
		return FilterChangedMsg{Field: field, Value: after}
	}
	return m, tea.Batch(cmd, changed)
}

func (m *FilterBarModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	n := len(m.inputs)
	m.focus = ((m.focus+delta)%n + n) % n
	return m.inputs[m.focus].Focus()
}

// View renders every field with its label. Fields whose text was ignored by
// sanitization are flagged.
func (m FilterBarModel) View() string {
	cells := make([]string, 0, len(m.inputs))
	for i, f := range query.Fields {
		labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
		if m.focused && i == m.focus {
			labelStyle = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
		}

		label := labelStyle.Render(f.Label())
		value := m.inputs[i].View()
		if raw := strings.TrimSpace(m.inputs[i].Value()); raw != "" && !m.criteria.Has(f) &&
			(f != query.FieldType || !strings.EqualFold(raw, "any")) {
			value += " " + m.theme.StatusWarning.Render("ignored")
		}

		cells = append(cells, lipgloss.NewStyle().
			MarginRight(2).
			Render(lipgloss.JoinVertical(lipgloss.Left, label, value)))
	}

	rows := wrapCells(cells, m.width)
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if m.focused {
		hints := []string{
			filterKeys.Next.Help().Key + " " + filterKeys.Next.Help().Desc,
			filterKeys.Prev.Help().Key + " " + filterKeys.Prev.Help().Desc,
			filterKeys.Done.Help().Key + " " + filterKeys.Done.Help().Desc,
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  ")))
	}

	return body
}

// Resize updates the component width.
func (m *FilterBarModel) Resize(width int) {
	m.width = width
}

// wrapCells lays cells out left to right, starting a new row when the next
// cell would overflow width.
func wrapCells(cells []string, width int) []string {
	var rows []string
	var row []string
	used := 0
	for _, c := range cells {
		w := lipgloss.Width(c)
		if len(row) > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, c)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return rows
}
