// Package forms provides huh-based form components for the TUI.
package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/user/match-moments-cli/gamelog"
)

// NewConfirmDeleteForm creates a huh confirm form asking whether to delete
// the given moment. The result pointer is bound to the confirm field value.
func NewConfirmDeleteForm(m *gamelog.Moment, confirm *bool) *huh.Form {
	title := fmt.Sprintf("Delete %s by %s at %s?",
		m.Event, m.PlayerName, gamelog.FormatTimecode(m.Inpoint))
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description("The moment is hidden from views and skipped on export. It stays recoverable in the audit view until the session ends.").
				Affirmative("Delete").
				Negative("Keep").
				Value(confirm),
		),
	).WithTheme(Theme())
}
