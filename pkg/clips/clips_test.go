package clips

import (
	"path/filepath"
	"testing"

	"github.com/user/match-moments-cli/gamelog"
)

func TestBuildClipPath(t *testing.T) {
	m := &gamelog.Moment{
		PlayerName: "Alice Smith",
		Event:      "Line Break",
		Inpoint:    3725, // 01:02:05
		Outpoint:   3735,
	}

	got := BuildClipPath("/videos/match one.mp4", m)
	want := filepath.Join("/videos", "clips", "match one",
		"Alice_Smith", "010205-Alice_Smith-Line_Break.mp4")
	if got != want {
		t.Fatalf("BuildClipPath = %q, want %q", got, want)
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"Alice Smith":  "Alice_Smith",
		"a/b\\c":       "a_b_c",
		"what?":        "what_",
		"plain":        "plain",
		"colon:star*":  "colon_star_",
	}
	for in, want := range cases {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEffectiveOutpoint(t *testing.T) {
	short := &gamelog.Moment{Inpoint: 100, Outpoint: 101}
	if got := EffectiveOutpoint(short); got != 104 {
		t.Fatalf("short moment outpoint = %d, want 104", got)
	}

	long := &gamelog.Moment{Inpoint: 100, Outpoint: 130}
	if got := EffectiveOutpoint(long); got != 130 {
		t.Fatalf("long moment outpoint = %d, want 130", got)
	}
}
