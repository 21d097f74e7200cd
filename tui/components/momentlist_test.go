package components

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/user/match-moments-cli/gamelog"
)

func momentFixture(player, event string) *gamelog.Moment {
	return &gamelog.Moment{
		PlayerID:   "1",
		PlayerName: player,
		Event:      event,
		Inpoint:    60,
		Outpoint:   75,
	}
}

func TestTruncateStr(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 13, "exactly ten.."},
		{"a much longer event label", 10, "a much ..."},
		{"abc", 2, "ab"},
		{"Sébastien Deschamps", 10, "Sébasti..."},
		{"東京スタジアム戦", 5, "東京..."},
	}
	for _, c := range cases {
		got := truncateStr(c.in, c.maxLen)
		if got != c.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", c.in, c.maxLen, got, c.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncateStr(%q, %d) produced invalid UTF-8: %q", c.in, c.maxLen, got)
		}
	}
}

func TestRenderMomentRowKeepsMultiByteNamesValid(t *testing.T) {
	m := momentFixture("Sébastien Deschamps-Lévêque-Müller", "Percée décisive à l'aile")
	row := renderMomentRow(m, false, 19, 18, 12, 6, 80)
	if !utf8.ValidString(row) {
		t.Errorf("rendered row contains invalid UTF-8: %q", row)
	}
	if strings.Contains(row, "�") {
		t.Errorf("rendered row contains replacement characters: %q", row)
	}
}
