// Package playback drives timed playback of game-log moments against an
// external video player: a caption overlay precedes each segment, segments
// run back-to-back during a sequence, and cancellation is cooperative.
package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/user/match-moments-cli/gamelog"
)

var (
	// ErrAlreadyRunning is returned when a sequence is started while
	// another one is active. The sequencer has no notion of concurrent
	// playback ownership, so callers must stop the active run first.
	ErrAlreadyRunning = errors.New("playback: a sequence is already running")
	// ErrMediaUnavailable wraps failures from the player or captioner.
	// The current sequence aborts; the process carries on.
	ErrMediaUnavailable = errors.New("playback: media unavailable")

	// errStopped signals a user-requested stop internally. It is translated
	// to a normal return before reaching callers.
	errStopped = errors.New("playback: stopped")
)

// Player is the external video capability the sequencer depends on.
type Player interface {
	Seek(seconds float64) error
	Play() error
	Pause() error
	Position() (float64, error)
}

// Captioner is the external overlay capability used for the pre-roll
// event caption.
type Captioner interface {
	ShowCaption(event, player string) error
	HideCaption() error
}

// State is the per-moment playback phase.
type State int

const (
	// StateIdle means no moment is being played.
	StateIdle State = iota
	// StateOverlayShown means the caption overlay is on screen.
	StateOverlayShown
	// StatePlaying means the video segment is running.
	StatePlaying
	// StateDone means the segment finished or was cancelled.
	StateDone
)

// Timing holds the sequencing delays. All suspension points are cancellable.
type Timing struct {
	// CaptionDwell is how long the caption overlay stays on screen.
	CaptionDwell time.Duration
	// FadeGap is the pause between hiding the caption and starting the
	// segment, budgeting for the overlay's fade-out.
	FadeGap time.Duration
	// PollInterval is the cadence for checking the playback position,
	// and therefore the bound on cancellation latency mid-segment.
	PollInterval time.Duration
	// MomentGap is the pause between queued moments.
	MomentGap time.Duration
}

// DefaultTiming returns the standard sequencing delays.
func DefaultTiming() Timing {
	return Timing{
		CaptionDwell: 2000 * time.Millisecond,
		FadeGap:      500 * time.Millisecond,
		PollInterval: 100 * time.Millisecond,
		MomentGap:    1000 * time.Millisecond,
	}
}

// Sequencer plays one moment or a queue of moments. At most one run is
// active at a time; Stop requests cooperative cancellation of the active run.
type Sequencer struct {
	player    Player
	captioner Captioner
	timing    Timing

	// OnState, when set, is invoked on every per-moment state transition.
	OnState func(state State, m *gamelog.Moment)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// New creates a sequencer for the given player and captioner.
func New(player Player, captioner Captioner, timing Timing) *Sequencer {
	return &Sequencer{
		player:    player,
		captioner: captioner,
		timing:    timing,
	}
}

// Running reports whether a run is active. The UI uses this to disable
// entry points that could start a second concurrent run.
func (s *Sequencer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop requests cancellation of the active run. The signal takes effect at
// the next poll tick or queue boundary; calling Stop with no active run is
// a no-op.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && s.stopCh != nil {
		select {
		case <-s.stopCh:
		default:
			close(s.stopCh)
		}
	}
}

// PlayMoment plays a single moment: caption overlay, fade gap, then the
// video segment from inpoint to outpoint. A single moment always runs its
// segment to completion; only context cancellation interrupts it.
func (s *Sequencer) PlayMoment(ctx context.Context, m *gamelog.Moment) error {
	stopCh, err := s.begin()
	if err != nil {
		return err
	}
	defer s.end()
	return s.playOne(ctx, stopCh, m, false)
}

// PlayAll plays the queued moments back-to-back with the inter-moment gap
// between items. A Stop observed between items guarantees the next item
// never starts; a Stop observed mid-segment pauses the video at the next
// poll tick. A user stop is a normal return, not an error.
func (s *Sequencer) PlayAll(ctx context.Context, moments []*gamelog.Moment) error {
	stopCh, err := s.begin()
	if err != nil {
		return err
	}
	defer s.end()

	for i, m := range moments {
		if stopRequested(stopCh) {
			return nil
		}
		if err := s.playOne(ctx, stopCh, m, true); err != nil {
			if errors.Is(err, errStopped) {
				return nil
			}
			return err
		}
		if stopRequested(stopCh) {
			return nil
		}
		if i < len(moments)-1 {
			if err := s.wait(ctx, stopCh, s.timing.MomentGap, true); err != nil {
				if errors.Is(err, errStopped) {
					return nil
				}
				return err
			}
		}
	}
	return nil
}

// begin claims the single run slot and hands back a fresh stop channel.
func (s *Sequencer) begin() (chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil, ErrAlreadyRunning
	}
	s.running = true
	s.stopCh = make(chan struct{})
	return s.stopCh, nil
}

// end releases the run slot.
func (s *Sequencer) end() {
	s.mu.Lock()
	s.running = false
	s.stopCh = nil
	s.mu.Unlock()
}

// playOne runs the Idle → OverlayShown → Playing → Done machine for one
// moment. When cancellable, the stop channel is honoured at every
// suspension point; otherwise only the context interrupts.
func (s *Sequencer) playOne(ctx context.Context, stopCh chan struct{}, m *gamelog.Moment, cancellable bool) error {
	s.setState(StateOverlayShown, m)
	if err := s.captioner.ShowCaption(m.Event, m.PlayerName); err != nil {
		return fmt.Errorf("%w: %v", ErrMediaUnavailable, err)
	}
	if err := s.wait(ctx, stopCh, s.timing.CaptionDwell, cancellable); err != nil {
		_ = s.captioner.HideCaption()
		s.setState(StateDone, m)
		return err
	}
	if err := s.captioner.HideCaption(); err != nil {
		return fmt.Errorf("%w: %v", ErrMediaUnavailable, err)
	}

	// Give the overlay fade-out time to complete before playing.
	if err := s.wait(ctx, stopCh, s.timing.FadeGap, cancellable); err != nil {
		s.setState(StateDone, m)
		return err
	}

	if err := s.player.Seek(float64(m.Inpoint)); err != nil {
		return fmt.Errorf("%w: %v", ErrMediaUnavailable, err)
	}
	if err := s.player.Play(); err != nil {
		return fmt.Errorf("%w: %v", ErrMediaUnavailable, err)
	}
	s.setState(StatePlaying, m)

	var stop <-chan struct{}
	if cancellable {
		stop = stopCh
	}

	ticker := time.NewTicker(s.timing.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = s.player.Pause()
			s.setState(StateDone, m)
			return ctx.Err()
		case <-stop:
			_ = s.player.Pause()
			s.setState(StateDone, m)
			return errStopped
		case <-ticker.C:
			pos, err := s.player.Position()
			if err != nil {
				// Transient position failures are tolerated; the next
				// tick retries.
				continue
			}
			if pos >= float64(m.Outpoint) {
				_ = s.player.Pause()
				s.setState(StateDone, m)
				return nil
			}
		}
	}
}

// wait sleeps for d, honouring the context and, when cancellable, the stop
// channel.
func (s *Sequencer) wait(ctx context.Context, stopCh chan struct{}, d time.Duration, cancellable bool) error {
	var stop <-chan struct{}
	if cancellable {
		stop = stopCh
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-stop:
		return errStopped
	case <-timer.C:
		return nil
	}
}

func (s *Sequencer) setState(state State, m *gamelog.Moment) {
	if s.OnState != nil {
		s.OnState(state, m)
	}
}

// stopRequested reports whether the stop channel has been closed.
func stopRequested(stopCh chan struct{}) bool {
	select {
	case <-stopCh:
		return true
	default:
		return false
	}
}
