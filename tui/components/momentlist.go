package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/tui/styles"
)

// MomentListState holds the state for the moment list component.
type MomentListState struct {
	// Moments is the visible slice in store order
	Moments []*gamelog.Moment
	// SelectedIndex is the currently selected row
	SelectedIndex int
	// ScrollOffset is the scroll position
	ScrollOffset int
}

// listRows is the fixed number of visible rows (excluding header).
const listRows = 12

// MomentList renders the visible moments as a table: time range, player,
// event, and marker column (★ match highlight, ◆ player highlight, audit
// letters e/i/d for edited, inserted, deleted).
func MomentList(state MomentListState, width int) string {
	var lines []string

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Bold(true).
		Underline(true)

	timeWidth := 19 // "hh:mm:ss - hh:mm:ss"
	markWidth := 6
	playerWidth := 18
	eventWidth := width - timeWidth - playerWidth - markWidth - 6
	if eventWidth < 10 {
		eventWidth = 10
	}

	header := fmt.Sprintf(" %-*s %-*s %-*s %-*s",
		timeWidth, "Time",
		playerWidth, "Player",
		eventWidth, "Event",
		markWidth, "Marks")
	lines = append(lines, headerStyle.Render(header))

	if len(state.Moments) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Purple).
			Italic(true)
		lines = append(lines, emptyStyle.Render(" No moments match the current view"))
		for i := 1; i < listRows; i++ {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	// Keep the selected row inside the window.
	if state.SelectedIndex < state.ScrollOffset {
		state.ScrollOffset = state.SelectedIndex
	} else if state.SelectedIndex >= state.ScrollOffset+listRows {
		state.ScrollOffset = state.SelectedIndex - listRows + 1
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}
	maxOffset := len(state.Moments) - listRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if state.ScrollOffset > maxOffset {
		state.ScrollOffset = maxOffset
	}

	for row := 0; row < listRows; row++ {
		idx := state.ScrollOffset + row
		if idx >= len(state.Moments) {
			lines = append(lines, "")
			continue
		}
		m := state.Moments[idx]
		lines = append(lines, renderMomentRow(m, idx == state.SelectedIndex,
			timeWidth, playerWidth, eventWidth, markWidth, width))
	}

	return strings.Join(lines, "\n")
}

func renderMomentRow(m *gamelog.Moment, selected bool, timeWidth, playerWidth, eventWidth, markWidth, fullWidth int) string {
	timeStr := gamelog.FormatTimecode(m.Inpoint) + " - " + gamelog.FormatTimecode(m.Outpoint)

	marks := ""
	if m.MatchHighlight {
		marks += "★"
	}
	if m.PlayerHighlight {
		marks += "◆"
	}
	if m.Edited {
		marks += "e"
	}
	if m.Inserted {
		marks += "i"
	}
	if m.Deleted {
		marks += "d"
	}

	content := fmt.Sprintf(" %-*s %-*s %-*s %-*s",
		timeWidth, timeStr,
		playerWidth, truncateStr(m.PlayerName, playerWidth),
		eventWidth, truncateStr(m.Event, eventWidth),
		markWidth, marks)

	var lineStyle lipgloss.Style
	switch {
	case selected:
		lineStyle = lipgloss.NewStyle().
			Background(styles.BrightPurple).
			Foreground(styles.LightLavender).
			Bold(true).
			Width(fullWidth)
	case m.Deleted:
		lineStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Strikethrough(true).
			Width(fullWidth)
	default:
		lineStyle = lipgloss.NewStyle().
			Foreground(styles.LightLavender).
			Width(fullWidth)
	}

	return lineStyle.Render(content)
}

// truncateStr truncates a string to maxLen runes. Truncation happens on
// rune boundaries so multi-byte names never render as broken UTF-8.
func truncateStr(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// MoveUp moves the selection up in the list.
func (s *MomentListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection down in the list.
func (s *MomentListState) MoveDown() {
	if s.SelectedIndex < len(s.Moments)-1 {
		s.SelectedIndex++
	}
}

// Selected returns the currently selected moment, or nil if the list is empty.
func (s *MomentListState) Selected() *gamelog.Moment {
	if len(s.Moments) == 0 || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Moments) {
		return nil
	}
	return s.Moments[s.SelectedIndex]
}

// SetMoments replaces the list contents, clamping the selection.
func (s *MomentListState) SetMoments(moments []*gamelog.Moment) {
	s.Moments = moments
	if s.SelectedIndex >= len(moments) {
		s.SelectedIndex = len(moments) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
