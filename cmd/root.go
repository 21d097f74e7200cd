package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/match-moments-cli/config"
	"github.com/user/match-moments-cli/deps"
	"github.com/user/match-moments-cli/mpv"
	"github.com/user/match-moments-cli/playback"
)

var Version = "0.1.0"

// configPath can be overridden with the global --config flag.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "match-moments",
	Short: "A CLI tool for reviewing tagged match footage",
	Long: `match-moments is a CLI tool for coaches and analysts to review
match footage via mpv, driven by a pipe-delimited game log of tagged
moments.

Features:
  - Load, validate, and filter game logs
  - Play tagged moments in mpv with caption overlays
  - Edit, insert, and delete moments, then export the updated log
  - Export highlight clips with ffmpeg
  - Inspect companion bundles of per-player 360 media`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("match-moments version %s\n", Version)
	},
}

var openCmd = &cobra.Command{
	Use:   "open <video-file>",
	Short: "Open a video file in mpv",
	Long:  `Open a video file in mpv with the IPC socket enabled, so play and review commands can control it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		absPath, err := resolveVideoPath(args[0])
		if err != nil {
			return err
		}

		cfg := loadFileConfig()

		fmt.Printf("Opening video: %s\n", filepath.Base(absPath))
		process, err := mpv.LaunchMpv(absPath, socketPath(cfg))
		if err != nil {
			return fmt.Errorf("failed to launch mpv: %w", err)
		}

		client := mpv.NewClient(socketPath(cfg))
		if err := mpv.ConnectWithRetry(client, 50, 100*time.Millisecond); err != nil {
			if process.Process != nil {
				process.Process.Kill()
			}
			return fmt.Errorf("failed to connect to mpv: %w", err)
		}
		defer client.Close()

		if cfg.Player.Speed != nil {
			_ = client.SetSpeed(*cfg.Player.Speed)
		}

		if duration, err := client.GetDuration(); err == nil {
			minutes := int(duration) / 60
			seconds := int(duration) % 60
			fmt.Printf("Video session started: %s (duration: %d:%02d)\n", filepath.Base(absPath), minutes, seconds)
		} else {
			fmt.Printf("Video session started: %s\n", filepath.Base(absPath))
		}

		return process.Wait()
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (mpv, ffmpeg) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckMpv(); err != nil {
			fmt.Println("✗ mpv: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ mpv: OK")
		}

		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

// resolveVideoPath resolves and validates a video file argument.
func resolveVideoPath(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", absPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to access video file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a video file: %s", absPath)
	}
	return absPath, nil
}

// loadFileConfig reads the TOML config. A broken config is reported but
// never fatal.
func loadFileConfig() config.FileConfig {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return config.FileConfig{}
	}
	return cfg
}

// socketPath returns the configured mpv socket path or the default.
func socketPath(cfg config.FileConfig) string {
	if cfg.Player.SocketPath != nil {
		return *cfg.Player.SocketPath
	}
	return mpv.DefaultSocketPath
}

// sequenceTiming builds the sequencer delays, applying config overrides.
func sequenceTiming(cfg config.FileConfig) playback.Timing {
	timing := playback.DefaultTiming()
	if v := cfg.Playback.CaptionDwellMs; v != nil {
		timing.CaptionDwell = time.Duration(*v) * time.Millisecond
	}
	if v := cfg.Playback.FadeGapMs; v != nil {
		timing.FadeGap = time.Duration(*v) * time.Millisecond
	}
	if v := cfg.Playback.PollIntervalMs; v != nil {
		timing.PollInterval = time.Duration(*v) * time.Millisecond
	}
	if v := cfg.Playback.MomentGapMs; v != nil {
		timing.MomentGap = time.Duration(*v) * time.Millisecond
	}
	return timing
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
