package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/mpv"
	"github.com/user/match-moments-cli/session"
	"github.com/user/match-moments-cli/tui"
)

var reviewCatalogPath string

var reviewCmd = &cobra.Command{
	Use:   "review <video-file> <log-file>",
	Short: "Review a match interactively",
	Long: `Launch mpv on the video and open the interactive review screen for
the game log: filter moments by player and action, play them with caption
overlays, edit or insert moments, and export the updated log.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := resolveVideoPath(args[0])
		if err != nil {
			return err
		}
		store, warnings, err := loadLog(args[1])
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}

		cfg := loadFileConfig()

		// Catalog load failure is reported but never blocks the review.
		var catalog []string
		catalogPath := reviewCatalogPath
		if catalogPath == "" && cfg.Log.CatalogPath != nil {
			catalogPath = *cfg.Log.CatalogPath
		}
		if catalogPath != "" {
			catalog, err = gamelog.LoadCatalog(catalogPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not load action catalog: %v\n", err)
			}
		}

		process, err := mpv.LaunchMpv(videoPath, socketPath(cfg))
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

		// Session state is a convenience; the review works without it.
		sessions, err := session.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: session store unavailable: %v\n", err)
			sessions = nil
		}
		if sessions != nil {
			defer sessions.Close()
			sess := session.Session{
				VideoPath:   videoPath,
				LogPath:     args[1],
				CatalogPath: catalogPath,
				Speed:       1,
			}
			if prev, err := sessions.Get(videoPath); err == nil {
				sess.Speed = prev.Speed
				sess.ResumePosition = prev.ResumePosition
				if prev.ResumePosition > 0 {
					_ = client.Seek(prev.ResumePosition)
				}
				if prev.Speed > 0 {
					_ = client.SetSpeed(prev.Speed)
				}
			}
			_ = sessions.Save(sess)
		}
		if cfg.Player.Speed != nil {
			_ = client.SetSpeed(*cfg.Player.Speed)
		}

		if err := tui.Run(client, store, catalog, sessions, videoPath, args[1], sequenceTiming(cfg)); err != nil {
			return fmt.Errorf("review screen failed: %w", err)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewCatalogPath, "catalog", "", "path to action catalog file")
	rootCmd.AddCommand(reviewCmd)
}
