package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/tui/styles"
)

// PickerState holds the state for a modal picker over action entries.
// Separator rows are rendered but never selectable.
type PickerState struct {
	// Title is rendered above the entries
	Title string
	// Entries are the selectable rows, possibly with separators
	Entries []gamelog.PickerEntry
	// SelectedIndex is the current cursor position
	SelectedIndex int
}

// NewPicker builds a picker with the cursor on the entry carrying the
// given value, or on the first selectable entry.
func NewPicker(title string, entries []gamelog.PickerEntry, selected string) PickerState {
	state := PickerState{Title: title, Entries: entries}
	for i, e := range entries {
		if !e.Separator && e.Value == selected {
			state.SelectedIndex = i
			return state
		}
	}
	for i, e := range entries {
		if !e.Separator {
			state.SelectedIndex = i
			break
		}
	}
	return state
}

// MoveUp moves the cursor to the previous selectable entry.
func (s *PickerState) MoveUp() {
	for i := s.SelectedIndex - 1; i >= 0; i-- {
		if !s.Entries[i].Separator {
			s.SelectedIndex = i
			return
		}
	}
}

// MoveDown moves the cursor to the next selectable entry.
func (s *PickerState) MoveDown() {
	for i := s.SelectedIndex + 1; i < len(s.Entries); i++ {
		if !s.Entries[i].Separator {
			s.SelectedIndex = i
			return
		}
	}
}

// Selected returns the entry under the cursor, or nil for an empty picker.
func (s *PickerState) Selected() *gamelog.PickerEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	e := s.Entries[s.SelectedIndex]
	if e.Separator {
		return nil
	}
	return &e
}

// Picker renders the picker as a bordered modal.
func Picker(state PickerState, width int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)
	separatorStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)
	entryStyle := lipgloss.NewStyle().
		Foreground(styles.LightLavender)

	var lines []string
	lines = append(lines, titleStyle.Render(state.Title))
	for i, e := range state.Entries {
		switch {
		case e.Separator:
			lines = append(lines, separatorStyle.Render("  "+e.Label))
		case i == state.SelectedIndex:
			lines = append(lines, styles.Highlight.Render("▸ "+e.Label))
		default:
			lines = append(lines, entryStyle.Render("  "+e.Label))
		}
	}
	lines = append(lines, "")
	lines = append(lines, styles.SecondaryText.Render("j/k move · enter select · esc cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(0, 2)
	box := boxStyle.Render(strings.Join(lines, "\n"))

	if width > lipgloss.Width(box) {
		indent := (width - lipgloss.Width(box)) / 2
		pad := strings.Repeat(" ", indent)
		var indented []string
		for _, line := range strings.Split(box, "\n") {
			indented = append(indented, pad+line)
		}
		box = strings.Join(indented, "\n")
	}
	return box
}
