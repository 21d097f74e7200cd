// Package gamelog owns the in-memory game-log dataset: parsing the
// pipe-delimited log into moments, the canonical sorted moment store and its
// mutation operations, derived filtered views, and export back to the flat
// file format.
package gamelog

import "github.com/google/uuid"

// Moment is one recorded timed event tied to a player and an action label.
type Moment struct {
	// Key uniquely identifies the moment for the lifetime of the session.
	// It is assigned at parse or insert time and never changes.
	Key uuid.UUID

	// Player display fields, resolved from the player directory and kept
	// redundantly per moment for export fidelity.
	PlayerID   string
	PlayerName string
	Jersey     string
	ManualID   string

	// Event is the action label for this moment.
	Event string

	// Inpoint and Outpoint are whole seconds into the match video.
	Inpoint  int
	Outpoint int

	// Highlight classifications.
	MatchHighlight  bool
	PlayerHighlight bool

	// Audit flags track provenance relative to the originally loaded log.
	Edited   bool
	Inserted bool
	Deleted  bool
}

// Duration returns the segment length in seconds.
func (m *Moment) Duration() int {
	return m.Outpoint - m.Inpoint
}

// PlayerInfo holds the canonical display fields for one player id.
type PlayerInfo struct {
	Name     string
	Jersey   string
	ManualID string
}

// Flag identifies one of the two togglable highlight classifications.
type Flag int

const (
	// FlagMatchHighlight marks a moment for the match-wide highlight reel.
	FlagMatchHighlight Flag = iota
	// FlagPlayerHighlight marks a moment for the player's highlight reel.
	FlagPlayerHighlight
)

// String returns the flag name as used in user-facing messages.
func (f Flag) String() string {
	switch f {
	case FlagMatchHighlight:
		return "match highlight"
	case FlagPlayerHighlight:
		return "player highlight"
	default:
		return "unknown flag"
	}
}
