package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/playback"
)

// stubPlayer satisfies playback.Player and playback.Captioner. Position
// stays before every outpoint, so a segment runs until stopped.
type stubPlayer struct{}

func (p *stubPlayer) Seek(float64) error                     { return nil }
func (p *stubPlayer) Play() error                            { return nil }
func (p *stubPlayer) Pause() error                           { return nil }
func (p *stubPlayer) Position() (float64, error)             { return 0, nil }
func (p *stubPlayer) ShowCaption(event, player string) error { return nil }
func (p *stubPlayer) HideCaption() error                     { return nil }

const lockTestLog = `id|name|jersey|manual|event|inpoint|outpoint|inMomentsFile|isPlayerHighlight
1|Alice Smith|10|A1|Line Break|00:01:00|00:01:10|true|false
2|Bob Jones|7|B2|Tackle|00:02:00|00:02:15|false|true
`

func lockTestModel(t *testing.T) *Model {
	t.Helper()
	store, warnings, err := gamelog.Parse(lockTestLog)
	require.NoError(t, err)
	require.Empty(t, warnings)

	player := &stubPlayer{}
	timing := playback.Timing{
		CaptionDwell: 10 * time.Millisecond,
		FadeGap:      10 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
		MomentGap:    10 * time.Millisecond,
	}
	m := &Model{
		store:     store,
		seq:       playback.New(player, player, timing),
		selection: gamelog.MatchSelection(gamelog.ActionAll),
	}
	m.refresh()
	return m
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestPickersAndFormsLockedWhileSequenceRuns(t *testing.T) {
	m := lockTestModel(t)

	done := make(chan error, 1)
	go func() {
		done <- m.seq.PlayAll(context.Background(), m.store.Moments())
	}()
	require.Eventually(t, m.seq.Running, time.Second, 5*time.Millisecond)

	for _, key := range []string{"p", "c", "e", "i", "d"} {
		m.Update(keyMsg(key))
		require.Equal(t, pickerNone, m.pickerOpen, "picker opened on %q during a run", key)
		require.Equal(t, formNone, m.formOpen, "form opened on %q during a run", key)
		require.NotEmpty(t, m.message)
		m.message = ""
	}

	m.seq.Stop()
	require.NoError(t, <-done)

	// Once the run ends, the same keys work again.
	m.Update(keyMsg("p"))
	require.Equal(t, pickerPlayer, m.pickerOpen)
}

func TestEditFormOpensWhenIdle(t *testing.T) {
	m := lockTestModel(t)

	m.Update(keyMsg("e"))
	require.Equal(t, formEdit, m.formOpen)
	require.NotNil(t, m.form)
	require.Equal(t, "00:01:00", m.formResult.Inpoint)
}
