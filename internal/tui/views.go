package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDetail:
		content = m.detail.View()
	case StateHelp:
		content = m.renderHelp()
	default:
		content = m.renderBrowse()
	}

	return m.wrapWithBorder(content)
}

// renderBrowse renders the filter bar, favourites panel and listing grid.
func (m Model) renderBrowse() string {
	title := m.theme.Title.Render("🏘️  UrbanNest")

	sections := []string{title, m.filters.View(), ""}
	if fav := m.favourites.View(); fav != "" {
		sections = append(sections, fav)
	}
	sections = append(sections, m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHelp renders the full key reference.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("UrbanNest - Help")

	sections := []struct {
		title string
		items []string
	}{
		{
			"Listings",
			[]string{
				"↑/k, ↓/j    Move up/down",
				"Enter       View listing",
				"a           Add to favourites",
				"s           Cycle sort order",
			},
		},
		{
			"Filters",
			[]string{
				"/ or f      Edit filters",
				"Tab         Next field",
				"Enter/Esc   Finish editing",
				"c           Clear all filters",
			},
		},
		{
			"Listing detail",
			[]string{
				"←/→         Previous/next image",
				"1-9         Jump to image",
				"Tab         Switch tab",
				"f           Add to favourites",
				"Esc         Back to list",
			},
		},
		{
			"Favourites",
			[]string{
				"v           Manage favourites",
				"x           Remove selected",
				"X           Clear all",
			},
		},
		{
			"Application",
			[]string{
				"R           Reset session",
				"q           Quit",
				"Ctrl+C      Force quit",
			},
		},
	}

	var content []string
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))

		for _, item := range section.items {
			parts := strings.SplitN(item, "  ", 2)
			if len(parts) == 2 {
				line := fmt.Sprintf("  %-12s %s",
					lipgloss.NewStyle().Foreground(m.theme.Primary).Render(parts[0]),
					m.theme.Normal.Render(strings.TrimSpace(parts[1])),
				)
				content = append(content, line)
			}
		}
		content = append(content, "")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return m.theme.BorderedBox.
		Width(min(64, max(30, m.width-4))).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			lipgloss.JoinVertical(lipgloss.Left, content...),
			footer,
		))
}

// wrapWithBorder adds a border and the status bar around content.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Width(max(20, m.width-2)).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.state.String()

	center := fmt.Sprintf("%d/%d shown | %s",
		len(m.snapshot.Visible), m.snapshot.Total, m.snapshot.SortMode.Label())
	if n := len(m.snapshot.Favourites); n > 0 {
		center += fmt.Sprintf(" | ★ %d", n)
	}

	right := m.help.View(m.keymap)
	if m.state != StateBrowse {
		right = "? Help"
	}

	totalWidth := max(0, m.width-6)
	spacing := max(2, totalWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := m.theme.StatusInfo.Render(left) +
		strings.Repeat(" ", leftPad) +
		m.theme.Normal.Render(center) +
		strings.Repeat(" ", rightPad) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right)

	return lipgloss.NewStyle().
		MaxWidth(max(1, m.width-4)).
		Render(status)
}
