package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/mpv"
	"github.com/user/match-moments-cli/playback"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tagged moments in a running mpv",
	Long: `Play moments from a game log against the mpv instance started with
'match-moments open'. Each moment shows its caption overlay before the
segment runs.`,
}

var playMomentCmd = &cobra.Command{
	Use:   "moment <log-file> <index>",
	Short: "Play a single moment by its list index",
	Long:  `Play one moment. The index is 1-based and matches the filtered order shown by 'log list' with the same flags.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadLog(args[0])
		if err != nil {
			return err
		}

		moments := gamelog.VisibleMoments(store, selectionFromFlags())
		idx, err := parseIndexArg(args[1], len(moments))
		if err != nil {
			return err
		}
		return runSequence(cmd.Context(), func(ctx context.Context, seq *playback.Sequencer) error {
			return seq.PlayMoment(ctx, moments[idx])
		})
	},
}

var playAllCmd = &cobra.Command{
	Use:   "all <log-file>",
	Short: "Play every moment matching the filters",
	Long:  `Play the filtered moments back-to-back with a pause between them. Ctrl-C stops the sequence and pauses the video.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadLog(args[0])
		if err != nil {
			return err
		}

		moments := gamelog.VisibleMoments(store, selectionFromFlags())
		if len(moments) == 0 {
			return fmt.Errorf("no moments match the given filters")
		}
		fmt.Printf("Playing %d moments (Ctrl-C to stop)\n", len(moments))
		return runSequence(cmd.Context(), func(ctx context.Context, seq *playback.Sequencer) error {
			return seq.PlayAll(ctx, moments)
		})
	},
}

// runSequence connects to mpv and drives one playback sequence, pausing
// the video when the user interrupts.
func runSequence(parent context.Context, run func(context.Context, *playback.Sequencer) error) error {
	cfg := loadFileConfig()

	client := mpv.NewClient(socketPath(cfg))
	if err := client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to mpv: %w\n(Start the video with 'match-moments open' first)", err)
	}
	defer client.Close()

	seq := playback.New(client, client, sequenceTiming(cfg))
	seq.OnState = func(state playback.State, m *gamelog.Moment) {
		if state == playback.StateOverlayShown {
			fmt.Printf("  %s  %s - %s\n", m.Event,
				gamelog.FormatTimecode(m.Inpoint), gamelog.FormatTimecode(m.Outpoint))
		}
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, seq)
	if ctx.Err() != nil {
		// Interrupt: leave the player paused and exit cleanly.
		_ = client.Pause()
		fmt.Println("Stopped.")
		return nil
	}
	return err
}

func init() {
	addFilterFlags(playMomentCmd)
	addFilterFlags(playAllCmd)
	playCmd.AddCommand(playMomentCmd)
	playCmd.AddCommand(playAllCmd)
	rootCmd.AddCommand(playCmd)
}
