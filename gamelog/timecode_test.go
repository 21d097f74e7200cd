package gamelog

import (
	"errors"
	"testing"
)

func TestParseTimecode(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"00:00:00", 0},
		{"00:01:00", 60},
		{"01:02:03", 3723},
		{"100:00:00", 360000}, // no upper bound on hours
	}
	for _, c := range cases {
		got, err := ParseTimecode(c.text)
		if err != nil {
			t.Fatalf("ParseTimecode(%q) returned error: %v", c.text, err)
		}
		if got != c.want {
			t.Fatalf("ParseTimecode(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestParseTimecodeInvalid(t *testing.T) {
	for _, text := range []string{"", "90", "1:30", "00:01", "aa:bb:cc", "00:-1:00", "00:01:00:00"} {
		if _, err := ParseTimecode(text); !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("ParseTimecode(%q) = %v, want ErrInvalidTimestamp", text, err)
		}
	}
}

func TestTimecodeRoundTrip(t *testing.T) {
	for _, text := range []string{"00:00:00", "00:01:05", "01:11:22", "10:59:59"} {
		seconds, err := ParseTimecode(text)
		if err != nil {
			t.Fatalf("ParseTimecode(%q) returned error: %v", text, err)
		}
		if got := FormatTimecode(seconds); got != text {
			t.Fatalf("FormatTimecode(ParseTimecode(%q)) = %q", text, got)
		}
	}
}

func TestFormatPositionTruncates(t *testing.T) {
	if got := FormatPosition(65.9); got != "00:01:05" {
		t.Fatalf("FormatPosition(65.9) = %q, want 00:01:05", got)
	}
}
