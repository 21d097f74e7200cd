package gamelog

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Store owns the canonical ordered collection of moments for one loaded log,
// together with the player directory built at parse time. The collection is
// always sorted ascending by inpoint; soft-deleted moments are retained for
// audit and export but excluded from derived views.
type Store struct {
	moments   []*Moment
	directory map[string]PlayerInfo
}

// NewStore returns an empty store with an empty player directory.
func NewStore() *Store {
	return &Store{
		directory: make(map[string]PlayerInfo),
	}
}

// Len returns the number of moments, including soft-deleted ones.
func (s *Store) Len() int {
	return len(s.moments)
}

// Moments returns the moments in inpoint order. The slice is a copy but the
// pointed-to moments are the canonical records.
func (s *Store) Moments() []*Moment {
	out := make([]*Moment, len(s.moments))
	copy(out, s.moments)
	return out
}

// Moment looks up the canonical record for a key.
func (s *Store) Moment(key uuid.UUID) (*Moment, bool) {
	for _, m := range s.moments {
		if m.Key == key {
			return m, true
		}
	}
	return nil, false
}

// Player looks up the canonical display fields for a player id.
func (s *Store) Player(id string) (PlayerInfo, bool) {
	info, ok := s.directory[id]
	return info, ok
}

// PlayerIDs returns the directory's player ids in ascending order.
func (s *Store) PlayerIDs() []string {
	ids := make([]string, 0, len(s.directory))
	for id := range s.directory {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetFlag sets one of the two highlight classifications on a moment.
// Toggling a flag is not an edit for audit purposes, so no audit flag is
// touched and no re-sort is needed.
func (s *Store) SetFlag(key uuid.UUID, flag Flag, value bool) error {
	m, ok := s.Moment(key)
	if !ok {
		return ErrMomentNotFound
	}
	switch flag {
	case FlagMatchHighlight:
		m.MatchHighlight = value
	case FlagPlayerHighlight:
		m.PlayerHighlight = value
	default:
		return fmt.Errorf("gamelog: invalid flag %d", flag)
	}
	return nil
}

// EditRequest carries the editable fields of a moment.
type EditRequest struct {
	PlayerID string
	Event    string
	Inpoint  int
	Outpoint int
}

// InsertRequest carries the fields of a manually inserted moment.
type InsertRequest struct {
	PlayerID        string
	Event           string
	Inpoint         int
	Outpoint        int
	MatchHighlight  bool
	PlayerHighlight bool
}

// Edit applies req to the moment behind key. The outpoint must be after the
// inpoint and the player id must exist in the directory; on any validation
// failure the store is left untouched. Display fields are re-resolved from
// the directory using the (possibly new) player id. The edited audit flag is
// set only when id, event, inpoint or outpoint actually changed.
func (s *Store) Edit(key uuid.UUID, req EditRequest) error {
	m, ok := s.Moment(key)
	if !ok {
		return ErrMomentNotFound
	}
	if req.Outpoint <= req.Inpoint {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidRange,
			FormatTimecode(req.Inpoint), FormatTimecode(req.Outpoint))
	}
	info, ok := s.directory[req.PlayerID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, req.PlayerID)
	}

	changed := m.PlayerID != req.PlayerID ||
		m.Event != req.Event ||
		m.Inpoint != req.Inpoint ||
		m.Outpoint != req.Outpoint

	m.PlayerID = req.PlayerID
	m.PlayerName = info.Name
	m.Jersey = info.Jersey
	m.ManualID = info.ManualID
	m.Event = req.Event
	m.Inpoint = req.Inpoint
	m.Outpoint = req.Outpoint
	if changed {
		m.Edited = true
	}

	s.sort()
	return nil
}

// Insert adds a new moment with the inserted audit flag set. Display fields
// are resolved from the directory; an id absent from the directory is
// rejected. Returns the key of the new moment.
func (s *Store) Insert(req InsertRequest) (uuid.UUID, error) {
	if req.Outpoint <= req.Inpoint {
		return uuid.Nil, fmt.Errorf("%w: %s >= %s", ErrInvalidRange,
			FormatTimecode(req.Inpoint), FormatTimecode(req.Outpoint))
	}
	info, ok := s.directory[req.PlayerID]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, req.PlayerID)
	}

	m := &Moment{
		Key:             uuid.New(),
		PlayerID:        req.PlayerID,
		PlayerName:      info.Name,
		Jersey:          info.Jersey,
		ManualID:        info.ManualID,
		Event:           req.Event,
		Inpoint:         req.Inpoint,
		Outpoint:        req.Outpoint,
		MatchHighlight:  req.MatchHighlight,
		PlayerHighlight: req.PlayerHighlight,
		Inserted:        true,
	}
	s.moments = append(s.moments, m)
	s.sort()
	return m.Key, nil
}

// SoftDelete marks a moment deleted. The record stays in the store for audit
// but is excluded from derived views and from export. There is no undelete.
func (s *Store) SoftDelete(key uuid.UUID) error {
	m, ok := s.Moment(key)
	if !ok {
		return ErrMomentNotFound
	}
	m.Deleted = true
	return nil
}

// sort re-establishes the inpoint ordering. The sort is stable so moments
// sharing an inpoint keep their relative order.
func (s *Store) sort() {
	sort.SliceStable(s.moments, func(i, j int) bool {
		return s.moments[i].Inpoint < s.moments[j].Inpoint
	})
}
