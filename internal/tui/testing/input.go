// Package testing provides helpers for driving the listing browser in tests.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// named maps the key names used by the browser's keymap to their message types.
var named = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+u":    tea.KeyCtrlU,
}

// KeyPress creates a key message. Names known to the keymap ("enter",
// "shift+tab") become special keys; anything else is typed as runes.
func KeyPress(key string) tea.KeyMsg {
	if t, ok := named[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// KeyDown moves the table cursor down.
func KeyDown() tea.KeyMsg { return KeyPress("down") }

// KeyLeft steps the gallery back.
func KeyLeft() tea.KeyMsg { return KeyPress("left") }

// KeyRight steps the gallery forward.
func KeyRight() tea.KeyMsg { return KeyPress("right") }

// KeyEnter opens the highlighted listing.
func KeyEnter() tea.KeyMsg { return KeyPress("enter") }

// KeyEsc backs out of the current view.
func KeyEsc() tea.KeyMsg { return KeyPress("esc") }

// KeyTab moves focus to the next filter or detail tab.
func KeyTab() tea.KeyMsg { return KeyPress("tab") }

// KeyShiftTab moves focus back.
func KeyShiftTab() tea.KeyMsg { return KeyPress("shift+tab") }

// KeyCtrlU clears the focused filter.
func KeyCtrlU() tea.KeyMsg { return KeyPress("ctrl+u") }

// WindowSize creates a terminal resize message.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

// InputSequence collects messages to replay against a model.
type InputSequence struct {
	inputs []tea.Msg
}

// NewInputSequence starts a sequence with the given messages.
func NewInputSequence(inputs ...tea.Msg) *InputSequence {
	return &InputSequence{inputs: inputs}
}

// Keys appends one key message per name.
func (s *InputSequence) Keys(names ...string) *InputSequence {
	for _, n := range names {
		s.inputs = append(s.inputs, KeyPress(n))
	}
	return s
}

// Type appends one rune message per character, as a user typing into a filter.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.inputs = append(s.inputs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

// Messages returns the collected messages.
func (s *InputSequence) Messages() []tea.Msg {
	return s.inputs
}
