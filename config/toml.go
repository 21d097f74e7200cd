// Package config provides TOML configuration and XDG path helpers.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Player   PlayerConfig   `toml:"player"`
	Playback PlaybackConfig `toml:"playback"`
	Log      LogConfig      `toml:"log"`
}

// PlayerConfig maps mpv-related settings.
type PlayerConfig struct {
	SocketPath *string  `toml:"socket"`
	Speed      *float64 `toml:"speed"`
}

// PlaybackConfig maps moment-sequencing delays, all in milliseconds.
type PlaybackConfig struct {
	CaptionDwellMs *int `toml:"caption-dwell-ms"`
	FadeGapMs      *int `toml:"fade-gap-ms"`
	PollIntervalMs *int `toml:"poll-interval-ms"`
	MomentGapMs    *int `toml:"moment-gap-ms"`
}

// LogConfig maps game-log related settings.
type LogConfig struct {
	CatalogPath *string `toml:"catalog"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; the zero config is returned.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
