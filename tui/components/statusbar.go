// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/tui/styles"
)

// StatusBarState holds the current playback state for the status bar.
type StatusBarState struct {
	// Paused indicates if playback is paused
	Paused bool
	// TimePos is the current playback position in seconds
	TimePos float64
	// Duration is the total video duration in seconds
	Duration float64
	// Speed is the current playback speed multiplier
	Speed float64
	// Scope describes the active filter scope (player or match view)
	Scope string
	// Sequencing indicates a moment sequence is running
	Sequencing bool
	// ShowDeleted indicates the audit view is active
	ShowDeleted bool
}

// StatusBar renders the status bar: play state, position over duration,
// active scope, speed, and mode indicators.
func StatusBar(state StatusBarState, width int) string {
	playIcon := "▶"
	if state.Paused {
		playIcon = "⏸"
	}

	left := fmt.Sprintf(" %s %s / %s",
		playIcon,
		gamelog.FormatPosition(state.TimePos),
		gamelog.FormatPosition(state.Duration))
	if state.Scope != "" {
		left += "  " + state.Scope
	}

	right := ""
	if state.Sequencing {
		right += "SEQ "
	}
	if state.ShowDeleted {
		right += "AUDIT "
	}
	if state.Speed > 0 && state.Speed != 1 {
		right += fmt.Sprintf("%.2gx ", state.Speed)
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	content := left
	for i := 0; i < padding; i++ {
		content += " "
	}
	content += right

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Foreground(styles.LightLavender).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(content)
}
