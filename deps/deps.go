// Package deps verifies the external tools the CLI shells out to.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL    = "https://mpv.io/installation/"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError describes a missing external tool.
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks that mpv is available in PATH. Playback commands need it.
func CheckMpv() error {
	if _, err := exec.LookPath("mpv"); err != nil {
		return &DependencyError{Name: "mpv", InstallURL: MpvInstallURL}
	}
	return nil
}

// CheckFfmpeg checks that ffmpeg is available in PATH. Clip export needs it.
func CheckFfmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return &DependencyError{Name: "ffmpeg", InstallURL: FfmpegInstallURL}
	}
	return nil
}

// CheckAll checks every external dependency and returns the missing ones.
func CheckAll() []error {
	var errs []error
	if err := CheckMpv(); err != nil {
		errs = append(errs, err)
	}
	if err := CheckFfmpeg(); err != nil {
		errs = append(errs, err)
	}
	return errs
}
