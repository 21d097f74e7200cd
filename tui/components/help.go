package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/match-moments-cli/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings.
func HelpOverlay(width, height int) string {
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Playback",
			bindings: []struct {
				key  string
				desc string
			}{
				{"Space", "Toggle play/pause"},
				{"Enter", "Play selected moment"},
				{"a", "Play all visible moments / stop sequence"},
				{"[ / ]", "Decrease / increase speed"},
			},
		},
		{
			title: "View",
			bindings: []struct {
				key  string
				desc string
			}{
				{"j / k", "Move selection"},
				{"p", "Choose player scope"},
				{"c", "Choose action filter"},
				{"u", "Toggle deleted moments (audit view)"},
			},
		},
		{
			title: "Editing",
			bindings: []struct {
				key  string
				desc string
			}{
				{"e", "Edit selected moment"},
				{"i", "Insert new moment"},
				{"d", "Delete selected moment"},
				{"m", "Toggle match highlight"},
				{"g", "Toggle player highlight"},
			},
		},
		{
			title: "Session",
			bindings: []struct {
				key  string
				desc string
			}{
				{"x", "Export game log"},
				{"?", "Show/hide this help"},
				{"q", "Quit"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Padding(0, 1)
	groupHeaderStyle := lipgloss.NewStyle().
		Foreground(styles.Pink).
		Bold(true).
		MarginTop(1)
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Bold(true).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.LightLavender)

	var lines []string
	lines = append(lines, titleStyle.Render("Keybindings"))
	lines = append(lines, "")
	for _, group := range groups {
		lines = append(lines, groupHeaderStyle.Render(group.title))
		for _, binding := range group.bindings {
			lines = append(lines, "  "+keyStyle.Render(binding.key)+descStyle.Render(binding.desc))
		}
	}
	lines = append(lines, "")
	footerStyle := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Italic(true)
	lines = append(lines, footerStyle.Render("Press any key to close"))

	content := strings.Join(lines, "\n")

	contentLines := strings.Split(content, "\n")
	contentWidth := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > contentWidth {
			contentWidth = w
		}
	}

	marginLeft := (width - contentWidth - 6) / 2
	if marginLeft < 0 {
		marginLeft = 0
	}
	marginTop := (height - len(contentLines) - 4) / 2
	if marginTop < 0 {
		marginTop = 0
	}

	panelStyle := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BrightPurple).
		Padding(1, 2)

	return lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginTop(marginTop).
		Render(panelStyle.Render(content))
}
