package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/testutil"
	tuitest "github.com/dulina20231254-glitch/urbannest/internal/tui/testing"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

func TestListingTable_SelectAndOpen(t *testing.T) {
	listings := testutil.Listings()
	tbl := NewListingTable(themes.Default, "£")
	tbl.Resize(120, 20)
	tbl.SetListings(listings, nil, len(listings))

	assert.Equal(t, 7, tbl.Len())
	assert.Equal(t, "1", tbl.SelectedID())

	tbl, _ = tbl.Update(tuitest.KeyDown())
	assert.Equal(t, "2", tbl.SelectedID())

	_, cmd := tbl.Update(tuitest.KeyEnter())
	assert.Equal(t, ListingChosenMsg{ID: "2"}, msgOf(t, cmd))

	// The cursor follows the listing when rows are reordered.
	reversed := make([]model.Listing, 0, len(listings))
	for i := len(listings) - 1; i >= 0; i-- {
		reversed = append(reversed, listings[i])
	}
	tbl.SetListings(reversed, nil, len(listings))
	assert.Equal(t, "2", tbl.SelectedID())
}

func TestListingTable_View(t *testing.T) {
	listings := testutil.Listings()
	tbl := NewListingTable(themes.Default, "£")
	tbl.Resize(120, 20)
	tbl.SetListings(listings[:2], listings[:1], 7)
	tbl.SetStatus(1, "Price: Low → High")

	view := tbl.View()
	assert.Contains(t, view, "2 of 7 listings | 1 filter(s) | Sort: Price: Low → High")
	assert.Contains(t, view, "★")
	assert.Contains(t, view, "£450,000")

	tbl.SetListings(nil, nil, 7)
	assert.Equal(t, "", tbl.SelectedID())
	assert.Contains(t, tbl.View(), "No listings match the current filters")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "abc", truncate("abc", 2))
}
