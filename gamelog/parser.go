package gamelog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Field positions within a data line. Lines carry at least the first eight
// fields; the player-highlight column and the three audit columns are
// optional trailing fields that default to false when absent.
const (
	fieldID = iota
	fieldName
	fieldJersey
	fieldManualID
	fieldEvent
	fieldInpoint
	fieldOutpoint
	fieldMatchHighlight
	fieldPlayerHighlight
	fieldEdited
	fieldInserted
	fieldDeleted

	minFields = 8
)

// Parse turns a raw game log into a Store. The first non-blank line is the
// header and is ignored. Malformed data lines are skipped, not fatal; one
// warning per skipped line is returned alongside the store.
func Parse(text string) (*Store, []string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrEmptyInput
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, nil, ErrInsufficientLines
	}

	store := NewStore()
	var warnings []string

	// Skip the header line.
	for i, line := range lines[1:] {
		lineNo := i + 2

		parts := strings.Split(line, "|")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < minFields {
			warnings = append(warnings, fmt.Sprintf("line %d: expected at least %d fields, got %d", lineNo, minFields, len(parts)))
			continue
		}

		field := func(idx int) string {
			if idx < len(parts) {
				return parts[idx]
			}
			return ""
		}

		// A line without a player id or an event label is not a moment.
		if field(fieldID) == "" || field(fieldEvent) == "" {
			continue
		}

		inpoint, err := ParseTimecode(field(fieldInpoint))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: bad inpoint %q", lineNo, field(fieldInpoint)))
			continue
		}
		outpoint, err := ParseTimecode(field(fieldOutpoint))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: bad outpoint %q", lineNo, field(fieldOutpoint)))
			continue
		}

		moment := &Moment{
			Key:             uuid.New(),
			PlayerID:        field(fieldID),
			PlayerName:      field(fieldName),
			Jersey:          field(fieldJersey),
			ManualID:        field(fieldManualID),
			Event:           field(fieldEvent),
			Inpoint:         inpoint,
			Outpoint:        outpoint,
			MatchHighlight:  parseFlag(field(fieldMatchHighlight)),
			PlayerHighlight: parseFlag(field(fieldPlayerHighlight)),
			Edited:          parseFlag(field(fieldEdited)),
			Inserted:        parseFlag(field(fieldInserted)),
			Deleted:         parseFlag(field(fieldDeleted)),
		}

		// Player directory is first-write-wins per id.
		if _, ok := store.directory[moment.PlayerID]; !ok {
			store.directory[moment.PlayerID] = PlayerInfo{
				Name:     moment.PlayerName,
				Jersey:   moment.Jersey,
				ManualID: moment.ManualID,
			}
		}

		store.moments = append(store.moments, moment)
	}

	if len(store.moments) == 0 {
		return nil, warnings, ErrNoValidMoments
	}

	store.sort()
	return store, warnings, nil
}

// parseFlag reads a boolean log field. The canonical encoding is lowercase
// "true"; the legacy TitleCase "True" is accepted on import. Anything else,
// including an absent field, means false.
func parseFlag(token string) bool {
	return token == "true" || token == "True"
}
