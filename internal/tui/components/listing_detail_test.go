package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/selection"
	"github.com/dulina20231254-glitch/urbannest/internal/testutil"
	tuitest "github.com/dulina20231254-glitch/urbannest/internal/tui/testing"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

func viewing(l model.Listing, image int) selection.State {
	return selection.State{Mode: selection.ModeViewing, Listing: l, ImageIndex: image}
}

func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// collect runs cmd and returns its messages with batches flattened. Commands
// still running after a short wait are cursor blink timers and are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

func TestTabContent(t *testing.T) {
	listings := testutil.Listings()
	house, terrace := listings[0], listings[3]

	assert.Equal(t, house.LongDescription, TabContent(house, TabDescription))
	assert.Equal(t, terrace.ShortDescription, TabContent(terrace, TabDescription))
	assert.Equal(t, "No description available.", TabContent(model.Listing{}, TabDescription))

	assert.Equal(t, "Floor plan: images/1-plan.png", TabContent(house, TabFloorPlan))
	assert.Equal(t, "No floor plan available.", TabContent(terrace, TabFloorPlan))

	location := TabContent(house, TabLocation)
	assert.Contains(t, location, "Bromley town centre")
	assert.Contains(t, location, "Postcode: BR1 2AB")
	assert.Contains(t, location, "Map: https://www.google.com/maps/search/?api=1&query=BR1+2AB")
}

func TestMapURL(t *testing.T) {
	assert.Equal(t, "", MapURL("  "))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=SE1+9XY", MapURL(" SE1 9XY "))
}

func TestDetail_Keys(t *testing.T) {
	l := testutil.Listings()[0]
	d := NewDetail(themes.Default, "£")
	d.Enter(viewing(l, 0), false)

	_, cmd := d.Update(tuitest.KeyEsc())
	assert.Equal(t, BackToListMsg{}, msgOf(t, cmd))

	_, cmd = d.Update(tuitest.KeyPress("l"))
	assert.Equal(t, NextImageMsg{}, msgOf(t, cmd))

	_, cmd = d.Update(tuitest.KeyLeft())
	assert.Equal(t, PrevImageMsg{}, msgOf(t, cmd))

	_, cmd = d.Update(tuitest.KeyPress("2"))
	assert.Equal(t, SelectImageMsg{Index: 1}, msgOf(t, cmd))

	_, cmd = d.Update(tuitest.KeyPress("f"))
	assert.Equal(t, AddFavouriteMsg{}, msgOf(t, cmd))
}

func TestDetail_FavouriteButton(t *testing.T) {
	l := testutil.Listings()[1]
	d := NewDetail(themes.Default, "£")

	d.Enter(viewing(l, 0), false)
	assert.Contains(t, d.View(), "☆ Add to favourites")

	d.Sync(viewing(l, 0), true)
	assert.Contains(t, d.View(), "★ Added")

	_, cmd := d.Update(tuitest.KeyPress("a"))
	assert.Nil(t, cmd, "already saved")
}

func TestDetail_Tabs(t *testing.T) {
	l := testutil.Listings()[2]
	d := NewDetail(themes.Default, "£")
	d.Enter(viewing(l, 0), false)
	require.Equal(t, TabDescription, d.Tab())

	d, _ = d.Update(tuitest.KeyShiftTab())
	assert.Equal(t, TabLocation, d.Tab())
	assert.Contains(t, d.View(), "Bickley")

	d, _ = d.Update(tuitest.KeyTab())
	assert.Equal(t, TabDescription, d.Tab())

	d, _ = d.Update(tuitest.KeyTab())
	d.Sync(viewing(l, 1), false)
	assert.Equal(t, TabFloorPlan, d.Tab(), "sync keeps the tab")

	d.Enter(viewing(l, 0), false)
	assert.Equal(t, TabDescription, d.Tab(), "enter resets the tab")
}

func TestDetail_View(t *testing.T) {
	l := testutil.Listings()[2]
	d := NewDetail(themes.Default, "£")
	assert.Equal(t, "", d.View())

	d.Enter(viewing(l, 2), false)
	view := d.View()
	assert.Contains(t, view, "Bungalow in br1 4cd")
	assert.Contains(t, view, "£325,000")
	assert.Contains(t, view, "2 beds")
	assert.Contains(t, view, "Image 3 of 3")
	assert.Contains(t, view, "images/3c.jpg")
	assert.Contains(t, view, "[1]")
	assert.Contains(t, view, "[3]")
}
