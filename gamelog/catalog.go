package gamelog

import (
	"fmt"
	"os"
	"strings"
)

// LoadCatalog reads the externally supplied action catalog: a plain-text
// file with one permissible event label per line. Blank lines are skipped
// and order is preserved. A load failure is reported to the caller and is
// non-fatal to already-loaded data.
func LoadCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamelog: failed to read action catalog: %w", err)
	}

	var labels []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			labels = append(labels, line)
		}
	}
	return labels, nil
}
