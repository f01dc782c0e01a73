// Package selection tracks which listing, if any, is open in the detail
// view and which gallery image is showing.
package selection

import (
	"fmt"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// Mode is the view mode implied by the selection.
type Mode int

const (
	// ModeBrowsing is the list view; nothing is selected.
	ModeBrowsing Mode = iota
	// ModeViewing is the detail view for one listing.
	ModeViewing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "Browsing"
	case ModeViewing:
		return "Viewing"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// State is a snapshot of the selection. When Mode is ModeViewing, Listing is
// the full record and ImageIndex always points into Listing.Images.
type State struct {
	Listing    model.Listing
	ImageIndex int
	Mode       Mode
}

// IsViewing reports whether a listing is open.
func (s State) IsViewing() bool {
	return s.Mode == ModeViewing
}

// CurrentImage returns the gallery image being shown, or "" when browsing.
func (s State) CurrentImage() string {
	if !s.IsViewing() || s.ImageIndex >= len(s.Listing.Images) {
		return ""
	}
	return s.Listing.Images[s.ImageIndex]
}

// Machine is the Browsing/Viewing state machine. The zero value starts in
// Browsing.
type Machine struct {
	state State
}

// Current returns the current state.
func (m *Machine) Current() State {
	st := m.state
	st.Listing = st.Listing.Clone()
	return st
}

// Select opens l in the detail view with the gallery on its first image.
// Switching straight from one listing to another is not a transition; the
// caller must go Back first. It reports whether the state changed.
func (m *Machine) Select(l model.Listing) bool {
	if m.state.IsViewing() || len(l.Images) == 0 {
		return false
	}
	m.state = State{Mode: ModeViewing, Listing: l.Clone(), ImageIndex: 0}
	return true
}

// Back returns to the list view and drops the gallery pointer.
func (m *Machine) Back() bool {
	if !m.state.IsViewing() {
		return false
	}
	m.state = State{Mode: ModeBrowsing}
	return true
}

// SelectImage moves the gallery to ref. References that do not belong to
// the selected listing are ignored.
func (m *Machine) SelectImage(ref string) bool {
	if !m.state.IsViewing() {
		return false
	}
	return m.SelectImageIndex(m.state.Listing.ImageIndex(ref))
}

// SelectImageIndex moves the gallery to the i-th thumbnail. Out-of-range
// indexes are ignored.
func (m *Machine) SelectImageIndex(i int) bool {
	if !m.state.IsViewing() || i < 0 || i >= len(m.state.Listing.Images) {
		return false
	}
	if i == m.state.ImageIndex {
		return false
	}
	m.state.ImageIndex = i
	return true
}

// NextImage steps the gallery forward, wrapping to the first image.
func (m *Machine) NextImage() bool {
	if !m.state.IsViewing() {
		return false
	}
	n := len(m.state.Listing.Images)
	return m.SelectImageIndex((m.state.ImageIndex + 1) % n)
}

// PrevImage steps the gallery backward, wrapping to the last image.
func (m *Machine) PrevImage() bool {
	if !m.state.IsViewing() {
		return false
	}
	n := len(m.state.Listing.Images)
	return m.SelectImageIndex((m.state.ImageIndex - 1 + n) % n)
}

// Reset forces the machine back to Browsing.
func (m *Machine) Reset() {
	m.state = State{Mode: ModeBrowsing}
}
