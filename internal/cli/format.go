package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// DefaultCurrencySymbol is used when no symbol is configured.
const DefaultCurrencySymbol = "£"

var printer = message.NewPrinter(language.BritishEnglish)

// FormatPrice renders an amount with grouping separators. Whole amounts
// drop the pence.
func FormatPrice(amount float64, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	if amount == math.Trunc(amount) {
		return symbol + printer.Sprintf("%.0f", amount)
	}
	return symbol + printer.Sprintf("%.2f", amount)
}

// FormatBedrooms renders a bedroom count for display.
func FormatBedrooms(n int) string {
	if n == 1 {
		return "1 bed"
	}
	return strconv.Itoa(n) + " beds"
}

// ListingColumns are the columns written by RenderListingTable.
var ListingColumns = []string{"ID", "Type", "Price", "Beds", "Postcode", "Added", "Summary"}

// ListingRow converts a listing into table cells matching ListingColumns.
func ListingRow(l model.Listing, symbol string) []string {
	return []string{
		l.ID,
		string(l.Type),
		FormatPrice(l.Price, symbol),
		strconv.Itoa(l.Bedrooms),
		l.Postcode,
		l.DateAdded.String(),
		l.ShortDescription,
	}
}

// RenderListingTable writes listings as an aligned table.
func RenderListingTable(w io.Writer, listings []model.Listing, symbol string) error {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, ListingRow(l, symbol))
	}

	widths := make([]int, len(ListingColumns))
	for i, col := range ListingColumns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(ListingColumns, widths, TableHeaderStyle))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, lipgloss.NewStyle()))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = TableCellStyle.Inherit(style).Width(widths[i] + 2).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderListingDetail renders a single listing as a boxed summary.
func RenderListingDetail(l model.Listing, symbol string) string {
	line := func(name, value string) string {
		return LabelStyle.Render(name) + value
	}

	lines := []string{
		line("Type", string(l.Type)),
		line("Price", PriceStyle.Render(FormatPrice(l.Price, symbol))),
		line("Bedrooms", FormatBedrooms(l.Bedrooms)),
		line("Postcode", l.Postcode),
		line("Added", l.DateAdded.String()),
	}
	if l.Location != "" {
		lines = append(lines, line("Location", l.Location))
	}
	if l.FloorPlan != "" {
		lines = append(lines, line("Floor plan", l.FloorPlan))
	}
	lines = append(lines, line("Images", fmt.Sprintf("%d", len(l.Images))))
	for i, ref := range l.Images {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("  %d. %s", i+1, ref)))
	}
	if l.LongDescription != "" {
		lines = append(lines, "", l.LongDescription)
	} else if l.ShortDescription != "" {
		lines = append(lines, "", l.ShortDescription)
	}

	return RenderBox("Listing "+l.ID, strings.Join(lines, "\n"))
}
