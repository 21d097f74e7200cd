package gamelog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimecode converts an HH:MM:SS timecode to whole seconds.
// Exactly three colon-delimited non-negative integer fields are required.
// There is no upper bound on the hours field.
func ParseTimecode(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}

	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
		}
		fields[i] = n
	}

	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

// FormatTimecode formats whole seconds as a zero-padded HH:MM:SS timecode.
// Negative values are clamped to zero.
func FormatTimecode(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

// FormatPosition formats a fractional playback position as HH:MM:SS,
// truncating toward zero.
func FormatPosition(seconds float64) string {
	return FormatTimecode(int(seconds))
}
