// Package clips exports game-log moments as standalone video files using
// ffmpeg stream copy.
package clips

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/user/match-moments-cli/deps"
	"github.com/user/match-moments-cli/gamelog"
)

// MinClipSeconds is the minimum exported clip duration. Moments shorter
// than this are padded past their outpoint.
const MinClipSeconds = 4

// unsafeChars matches characters not safe for filenames: / \ : * ? < > | and spaces
var unsafeChars = regexp.MustCompile(`[/\\:*?<>|\s]`)

// sanitize replaces unsafe filename characters with underscores.
func sanitize(s string) string {
	return unsafeChars.ReplaceAllString(s, "_")
}

// BuildClipPath returns the full output path for an exported moment clip.
// Format: {videoDir}/clips/{videoFilenameNoExt}/{player}/{hhmmss}-{player}-{event}.mp4
func BuildClipPath(videoPath string, m *gamelog.Moment) string {
	videoDir := filepath.Dir(videoPath)
	videoBase := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	safePlayer := sanitize(m.PlayerName)
	safeEvent := sanitize(m.Event)

	hhmmss := strings.ReplaceAll(gamelog.FormatTimecode(m.Inpoint), ":", "")
	filename := fmt.Sprintf("%s-%s-%s.mp4", hhmmss, safePlayer, safeEvent)

	return filepath.Join(videoDir, "clips", videoBase, safePlayer, filename)
}

// EffectiveOutpoint returns the moment's end time with the minimum clip
// duration enforced.
func EffectiveOutpoint(m *gamelog.Moment) int {
	if m.Outpoint < m.Inpoint+MinClipSeconds {
		return m.Inpoint + MinClipSeconds
	}
	return m.Outpoint
}

// Export extracts one moment from the video into outputPath using ffmpeg
// stream copy. The output directory is created as needed.
func Export(videoPath string, m *gamelog.Moment, outputPath string) error {
	if err := deps.CheckFfmpeg(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	duration := EffectiveOutpoint(m) - m.Inpoint
	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%d", m.Inpoint),
		"-i", videoPath,
		"-t", fmt.Sprintf("%d", duration),
		"-c", "copy",
		outputPath,
	}

	cmd := exec.Command("ffmpeg", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, string(output))
	}
	return nil
}
