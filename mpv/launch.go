package mpv

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/user/match-moments-cli/deps"
)

// LaunchMpv starts mpv on the given video with the IPC socket enabled and
// playback initially paused. Returns the *exec.Cmd for the running process.
func LaunchMpv(videoPath, socketPath string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	cmd := exec.Command("mpv",
		"--input-ipc-server="+socketPath,
		"--pause",
		videoPath,
	)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// ConnectWithRetry polls the IPC socket until mpv accepts the connection,
// covering the window between process start and socket creation.
func ConnectWithRetry(client *Client, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = client.Connect(); err == nil {
			return nil
		}
		time.Sleep(delay)
	}
	return fmt.Errorf("mpv: could not connect after %d attempts: %w", attempts, err)
}
