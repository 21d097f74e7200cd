package gamelog

import (
	"fmt"
	"sort"
)

// ScopeMode selects the granularity of the current view.
type ScopeMode int

const (
	// ScopeNone means no selection has been made; nothing is visible.
	ScopeNone ScopeMode = iota
	// ScopeMatch covers every player's moments.
	ScopeMatch
	// ScopePlayer covers one specific player's moments.
	ScopePlayer
)

// Pseudo-filter values understood by the action filter alongside observed
// event labels. ActionAll is the "All Actions" sentinel.
const (
	ActionAll              = ""
	MatchHighlightsAction  = "Match Highlights"
	PlayerHighlightsAction = "Highlight Reel Moments"
)

// Selection describes the current scope and action filter. It is transient
// state, derived fresh from user picks on every render, never persisted.
type Selection struct {
	Mode     ScopeMode
	PlayerID string
	Action   string
	// ShowDeleted enables the audit view, which includes soft-deleted moments.
	ShowDeleted bool
}

// MatchSelection returns a match-wide selection with the given action filter.
func MatchSelection(action string) Selection {
	return Selection{Mode: ScopeMatch, Action: action}
}

// PlayerSelection returns a single-player selection with the given action filter.
func PlayerSelection(playerID, action string) Selection {
	return Selection{Mode: ScopePlayer, PlayerID: playerID, Action: action}
}

// VisibleMoments derives the subset of moments visible under sel, in store
// (inpoint-ascending) order. Soft-deleted moments are excluded unless the
// audit view is requested.
func VisibleMoments(s *Store, sel Selection) []*Moment {
	scoped := scopedMoments(s, sel)
	if sel.Action == ActionAll {
		return scoped
	}

	var out []*Moment
	for _, m := range scoped {
		switch sel.Action {
		case MatchHighlightsAction:
			if m.MatchHighlight {
				out = append(out, m)
			}
		case PlayerHighlightsAction:
			if m.PlayerHighlight {
				out = append(out, m)
			}
		default:
			if m.Event == sel.Action {
				out = append(out, m)
			}
		}
	}
	return out
}

// scopedMoments applies the scope and deleted filtering but not the action
// filter.
func scopedMoments(s *Store, sel Selection) []*Moment {
	var out []*Moment
	for _, m := range s.moments {
		if m.Deleted && !sel.ShowDeleted {
			continue
		}
		switch sel.Mode {
		case ScopeMatch:
			out = append(out, m)
		case ScopePlayer:
			if m.PlayerID == sel.PlayerID {
				out = append(out, m)
			}
		}
	}
	return out
}

// ObservedActions returns the sorted distinct event labels present in scope.
// This is the observed set from the log, distinct from the externally
// supplied action catalog.
func ObservedActions(s *Store, sel Selection) []string {
	seen := make(map[string]bool)
	for _, m := range scopedMoments(s, sel) {
		seen[m.Event] = true
	}
	actions := make([]string, 0, len(seen))
	for a := range seen {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}

// PickerEntry is one selectable row of the action picker.
type PickerEntry struct {
	// Value is what selecting the entry sets the action filter to.
	Value string
	// Label is the display text.
	Label string
	// Separator marks a non-selectable divider row.
	Separator bool
}

// ActionPicker derives the action-picker entries and the default selection
// for the current scope: the "All Actions" sentinel, a highlight pseudo-entry
// when at least one qualifying moment exists in scope, a separator, then the
// sorted observed labels. The default is the highlight pseudo-entry when
// present, else "All Actions".
func ActionPicker(s *Store, sel Selection) ([]PickerEntry, string) {
	if sel.Mode == ScopeNone {
		return nil, ActionAll
	}

	scoped := scopedMoments(s, sel)
	actions := ObservedActions(s, sel)

	highlightAction := MatchHighlightsAction
	hasHighlights := false
	for _, m := range scoped {
		if sel.Mode == ScopePlayer {
			hasHighlights = hasHighlights || m.PlayerHighlight
		} else {
			hasHighlights = hasHighlights || m.MatchHighlight
		}
	}
	if sel.Mode == ScopePlayer {
		highlightAction = PlayerHighlightsAction
	}

	entries := []PickerEntry{{Value: ActionAll, Label: "All Actions"}}
	if hasHighlights {
		entries = append(entries, PickerEntry{Value: highlightAction, Label: highlightAction})
	}
	if hasHighlights && len(actions) > 0 {
		entries = append(entries, PickerEntry{Separator: true, Label: "──────────"})
	}
	for _, a := range actions {
		entries = append(entries, PickerEntry{Value: a, Label: a})
	}

	if hasHighlights {
		return entries, highlightAction
	}
	return entries, ActionAll
}

// PlayerEntry is one selectable row of the player picker.
type PlayerEntry struct {
	ID    string
	Label string
}

// PlayerPicker derives the player-picker entries: every directory player in
// ascending id order, with the canonical display fields in the label.
func PlayerPicker(s *Store) []PlayerEntry {
	var entries []PlayerEntry
	for _, id := range s.PlayerIDs() {
		info := s.directory[id]
		entries = append(entries, PlayerEntry{
			ID: id,
			Label: fmt.Sprintf("ID: %s, Name: %s, Manual ID: %s, Jersey: %s",
				id, info.Name, info.ManualID, info.Jersey),
		})
	}
	return entries
}
