// Package cli renders listings and status messages for the non-interactive
// commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	AccentColor  = lipgloss.Color("#C8553D") // brick
	PriceColor   = lipgloss.Color("#588B8B") // slate green
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#F2C14E")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#6C6C6C")
	BorderColor  = lipgloss.Color("#3A3A3A")
)

var (
	// TitleStyle heads boxes such as "Listing 3" or "Imports".
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)

	// PriceStyle highlights asking prices.
	PriceStyle = lipgloss.NewStyle().Bold(true).Foreground(PriceColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)

	// SubtleStyle is for summaries, image references and IDs.
	SubtleStyle = lipgloss.NewStyle().Foreground(SubtleColor)

	// LabelStyle aligns field names in the detail box.
	LabelStyle = lipgloss.NewStyle().Bold(true).Width(12)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)

	// TableCellStyle pads cells; widths are set per column.
	TableCellStyle = lipgloss.NewStyle().PaddingRight(2)
)

const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠"
	InfoIcon    = "ℹ"
)

func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// RenderBox draws content under a title inside a rounded border.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(title),
		content,
	))
}
