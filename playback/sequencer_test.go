package playback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/match-moments-cli/gamelog"
)

// fastTiming keeps tests quick while preserving the ordering contract.
func fastTiming() Timing {
	return Timing{
		CaptionDwell: time.Millisecond,
		FadeGap:      time.Millisecond,
		PollInterval: time.Millisecond,
		MomentGap:    5 * time.Millisecond,
	}
}

// fakePlayer is a scripted playback target. When finishSegments is true the
// reported position jumps past the current outpoint as soon as Play is
// called, so every segment completes on the first poll tick.
type fakePlayer struct {
	mu             sync.Mutex
	finishSegments bool

	seeks  []float64
	plays  int
	pauses int
	pos    float64
}

func (p *fakePlayer) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seeks = append(p.seeks, seconds)
	p.pos = seconds
	return nil
}

func (p *fakePlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
	if p.finishSegments {
		p.pos = 1 << 20
	}
	return nil
}

func (p *fakePlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauses++
	return nil
}

func (p *fakePlayer) Position() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos, nil
}

func (p *fakePlayer) pauseCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pauses
}

type fakeCaptioner struct {
	mu     sync.Mutex
	shown  []string
	hidden int
}

func (c *fakeCaptioner) ShowCaption(event, player string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shown = append(c.shown, event+"/"+player)
	return nil
}

func (c *fakeCaptioner) HideCaption() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hidden++
	return nil
}

func (c *fakeCaptioner) shownCaptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.shown))
	copy(out, c.shown)
	return out
}

func moment(event string, inpoint, outpoint int) *gamelog.Moment {
	return &gamelog.Moment{
		PlayerID:   "00",
		PlayerName: "Alice",
		Event:      event,
		Inpoint:    inpoint,
		Outpoint:   outpoint,
	}
}

func TestPlayMomentStateOrder(t *testing.T) {
	player := &fakePlayer{finishSegments: true}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	var mu sync.Mutex
	var states []State
	seq.OnState = func(state State, _ *gamelog.Moment) {
		mu.Lock()
		states = append(states, state)
		mu.Unlock()
	}

	err := seq.PlayMoment(context.Background(), moment("Shot", 60, 65))
	require.NoError(t, err)

	assert.Equal(t, []State{StateOverlayShown, StatePlaying, StateDone}, states)
	assert.Equal(t, []float64{60}, player.seeks)
	assert.Equal(t, 1, player.plays)
	assert.Equal(t, 1, player.pauses)
	assert.Equal(t, []string{"Shot/Alice"}, captioner.shownCaptions())
	assert.Equal(t, 1, captioner.hidden)
	assert.False(t, seq.Running())
}

func TestPlayAllQueueOrder(t *testing.T) {
	player := &fakePlayer{finishSegments: true}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	queue := []*gamelog.Moment{
		moment("Shot", 60, 65),
		moment("Pass", 180, 188),
		moment("Tackle", 300, 310),
	}
	require.NoError(t, seq.PlayAll(context.Background(), queue))

	assert.Equal(t, []string{"Shot/Alice", "Pass/Alice", "Tackle/Alice"}, captioner.shownCaptions())
	assert.Equal(t, []float64{60, 180, 300}, player.seeks)
	assert.False(t, seq.Running())
}

func TestStopBetweenMomentsPreventsNext(t *testing.T) {
	player := &fakePlayer{finishSegments: true}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	// Request the stop the instant the first segment is done; the second
	// moment must never start.
	seq.OnState = func(state State, _ *gamelog.Moment) {
		if state == StateDone {
			seq.Stop()
		}
	}

	queue := []*gamelog.Moment{
		moment("Shot", 60, 65),
		moment("Pass", 180, 188),
	}
	require.NoError(t, seq.PlayAll(context.Background(), queue))

	assert.Equal(t, []string{"Shot/Alice"}, captioner.shownCaptions())
	assert.False(t, seq.Running())
}

func TestStopMidSegmentPausesVideo(t *testing.T) {
	// Position never reaches the outpoint, so only Stop ends the segment.
	player := &fakePlayer{}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	playing := make(chan struct{})
	seq.OnState = func(state State, _ *gamelog.Moment) {
		if state == StatePlaying {
			close(playing)
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- seq.PlayAll(context.Background(), []*gamelog.Moment{moment("Shot", 60, 65)})
	}()

	select {
	case <-playing:
	case <-time.After(time.Second):
		t.Fatal("sequence never reached the playing state")
	}
	seq.Stop()

	select {
	case err := <-done:
		require.NoError(t, err) // user stop is a normal return
	case <-time.After(time.Second):
		t.Fatal("sequence did not stop")
	}
	assert.Equal(t, 1, player.pauseCount())
	assert.False(t, seq.Running())
}

func TestSecondRunRejectedWhileActive(t *testing.T) {
	player := &fakePlayer{}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	playing := make(chan struct{})
	seq.OnState = func(state State, _ *gamelog.Moment) {
		if state == StatePlaying {
			close(playing)
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- seq.PlayAll(context.Background(), []*gamelog.Moment{moment("Shot", 60, 65)})
	}()

	select {
	case <-playing:
	case <-time.After(time.Second):
		t.Fatal("sequence never reached the playing state")
	}

	err := seq.PlayMoment(context.Background(), moment("Pass", 180, 188))
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	seq.Stop()
	require.NoError(t, <-done)
}

func TestContextCancelInterruptsSegment(t *testing.T) {
	player := &fakePlayer{}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	ctx, cancel := context.WithCancel(context.Background())
	playing := make(chan struct{})
	seq.OnState = func(state State, _ *gamelog.Moment) {
		if state == StatePlaying {
			close(playing)
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- seq.PlayMoment(ctx, moment("Shot", 60, 65))
	}()

	select {
	case <-playing:
	case <-time.After(time.Second):
		t.Fatal("sequence never reached the playing state")
	}
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, player.pauseCount())
}

type failingPlayer struct {
	fakePlayer
}

func (p *failingPlayer) Play() error {
	return errors.New("play rejected")
}

func TestMediaFailureAbortsSequence(t *testing.T) {
	player := &failingPlayer{}
	captioner := &fakeCaptioner{}
	seq := New(player, captioner, fastTiming())

	err := seq.PlayAll(context.Background(), []*gamelog.Moment{moment("Shot", 60, 65)})
	assert.ErrorIs(t, err, ErrMediaUnavailable)
	assert.False(t, seq.Running())
}
