package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/tui/styles"
)

// Timeline renders a progress bar with moment markers in a bordered
// container: playback position, timestamps, and a diamond at every visible
// moment's inpoint (amber for highlights).
func Timeline(timePos, duration float64, moments []*gamelog.Moment, width int) string {
	if width < 20 {
		return ""
	}

	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	filledStyle := lipgloss.NewStyle().Foreground(styles.BrightPurple)
	unfilledStyle := lipgloss.NewStyle().Foreground(styles.Purple)
	timeStyle := lipgloss.NewStyle().Foreground(styles.LightLavender).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(styles.Cyan)
	highlightMarkerStyle := lipgloss.NewStyle().Foreground(styles.Amber)
	posStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)

	timeDisplay := fmt.Sprintf(" %s / %s",
		gamelog.FormatPosition(timePos), gamelog.FormatPosition(duration))
	timeDisplayWidth := lipgloss.Width(timeDisplay)

	barWidth := innerWidth - timeDisplayWidth - 2
	if barWidth < 10 {
		barWidth = 10
	}

	var fillPos int
	if duration > 0 {
		fillPos = int(math.Round(float64(barWidth) * timePos / duration))
	}
	if fillPos < 0 {
		fillPos = 0
	}
	if fillPos > barWidth {
		fillPos = barWidth
	}

	// 0 = none, 1 = moment, 2 = highlight moment
	markers := make([]int, barWidth)
	if duration > 0 {
		for _, m := range moments {
			if m.Deleted {
				continue
			}
			pos := int(math.Round(float64(barWidth-1) * float64(m.Inpoint) / duration))
			if pos < 0 || pos >= barWidth {
				continue
			}
			if m.MatchHighlight || m.PlayerHighlight {
				markers[pos] = 2
			} else if markers[pos] == 0 {
				markers[pos] = 1
			}
		}
	}

	var barBuilder strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case markers[i] == 2:
			barBuilder.WriteString(highlightMarkerStyle.Render("◆"))
		case markers[i] == 1:
			barBuilder.WriteString(markerStyle.Render("◆"))
		case i < fillPos:
			barBuilder.WriteString(filledStyle.Render("━"))
		case i == fillPos:
			barBuilder.WriteString(posStyle.Render("╸"))
		default:
			barBuilder.WriteString(unfilledStyle.Render("─"))
		}
	}

	barLine := " " + barBuilder.String() + " " + timeStyle.Render(timeDisplay)

	var indicatorBuilder strings.Builder
	indicatorBuilder.WriteString(" ")
	for i := 0; i < barWidth; i++ {
		if i == fillPos {
			indicatorBuilder.WriteString(posStyle.Render("▲"))
		} else {
			indicatorBuilder.WriteString(" ")
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	boxInner := width - 2

	headerText := headerStyle.Render(" Timeline ")
	fillWidth := boxInner - 1 - lipgloss.Width(headerText)
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := borderStyle.Render("╭─") + headerText +
		borderStyle.Render(strings.Repeat("─", fillWidth)) + borderStyle.Render("╮")

	wrapLine := func(content string) string {
		pad := boxInner - lipgloss.Width(content)
		if pad < 0 {
			pad = 0
		}
		return borderStyle.Render("│") + content + strings.Repeat(" ", pad) + borderStyle.Render("│")
	}

	bottomLine := borderStyle.Render("╰" + strings.Repeat("─", boxInner) + "╯")

	return topLine + "\n" + wrapLine(barLine) + "\n" + wrapLine(indicatorBuilder.String()) + "\n" + bottomLine
}
