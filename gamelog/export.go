package gamelog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExportFilename is the default name for an exported game log.
const ExportFilename = "game_log_updated.txt"

// exportHeader matches the original flat-file schema with the three audit
// columns always present.
const exportHeader = "id|name|jersey|manual|event|inpoint|outpoint|inMomentsFile|isPlayerHighlight|manuallyEdited|manuallyInserted|manuallyDeleted"

// Export serializes the store back to the flat game-log format, one header
// line and one line per moment in store order. Soft-deleted moments are
// excluded. Booleans are written as lowercase true/false, the canonical
// encoding also accepted by Parse.
func Export(s *Store) string {
	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteByte('\n')

	for _, m := range s.moments {
		if m.Deleted {
			continue
		}
		fields := []string{
			m.PlayerID,
			m.PlayerName,
			m.Jersey,
			m.ManualID,
			m.Event,
			FormatTimecode(m.Inpoint),
			FormatTimecode(m.Outpoint),
			strconv.FormatBool(m.MatchHighlight),
			strconv.FormatBool(m.PlayerHighlight),
			strconv.FormatBool(m.Edited),
			strconv.FormatBool(m.Inserted),
			strconv.FormatBool(m.Deleted),
		}
		b.WriteString(strings.Join(fields, "|"))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteExport writes the exported log to path.
func WriteExport(s *Store, path string) error {
	if err := os.WriteFile(path, []byte(Export(s)), 0644); err != nil {
		return fmt.Errorf("gamelog: failed to write export: %w", err)
	}
	return nil
}
