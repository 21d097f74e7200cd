package mpv

import "fmt"

// captionOverlayID is the osd-overlay slot reserved for the pre-roll
// moment caption, kept away from ids other overlays might use.
const captionOverlayID = 63

// Seek jumps to an absolute position in seconds.
func (c *Client) Seek(seconds float64) error {
	_, err := c.sendCommand("seek", seconds, "absolute")
	return err
}

// Play resumes playback.
func (c *Client) Play() error {
	return c.SetProperty("pause", false)
}

// Pause halts playback.
func (c *Client) Pause() error {
	return c.SetProperty("pause", true)
}

// TogglePause flips the pause state and returns the new paused value.
func (c *Client) TogglePause() (bool, error) {
	paused, err := c.GetPaused()
	if err != nil {
		return false, err
	}
	if err := c.SetProperty("pause", !paused); err != nil {
		return false, err
	}
	return !paused, nil
}

// Position returns the current playback position in seconds.
func (c *Client) Position() (float64, error) {
	result, err := c.GetProperty("time-pos")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// GetDuration returns the total duration of the loaded video in seconds.
func (c *Client) GetDuration() (float64, error) {
	result, err := c.GetProperty("duration")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// GetPaused reports whether playback is paused.
func (c *Client) GetPaused() (bool, error) {
	result, err := c.GetProperty("pause")
	if err != nil {
		return false, err
	}
	paused, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("mpv: unexpected pause value type: %T", result)
	}
	return paused, nil
}

// GetSpeed returns the current playback speed multiplier.
func (c *Client) GetSpeed() (float64, error) {
	result, err := c.GetProperty("speed")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// SetSpeed sets the playback speed multiplier.
func (c *Client) SetSpeed(speed float64) error {
	return c.SetProperty("speed", speed)
}

// ShowCaption renders the event name with the player name beneath it,
// centered on the video, using an ASS osd-overlay.
func (c *Client) ShowCaption(event, player string) error {
	text := fmt.Sprintf(`{\an5\fs64\b1\bord3}%s\N{\fs40\b0}%s`,
		escapeASS(event), escapeASS(player))
	_, err := c.sendCommand("osd-overlay", captionOverlayID, "ass-events", text)
	return err
}

// HideCaption removes the caption overlay.
func (c *Client) HideCaption() error {
	_, err := c.sendCommand("osd-overlay", captionOverlayID, "none", "")
	return err
}

// ShowText flashes a transient OSD message for durationMs milliseconds.
func (c *Client) ShowText(text string, durationMs int) error {
	_, err := c.sendCommand("show-text", text, durationMs)
	return err
}

// escapeASS neutralises characters with meaning in ASS markup.
func escapeASS(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '{', '}', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
