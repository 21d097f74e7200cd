package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/match-moments-cli/bundle"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Inspect companion media bundles",
	Long:  `Work with the zip bundle of per-player 360 videos and thumbnails that ships alongside a match video.`,
}

var bundleInspectCmd = &cobra.Command{
	Use:   "inspect <bundle.zip>",
	Short: "List the players and media in a bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bundle.Open(args[0])
		if err != nil {
			return err
		}
		defer b.Close()

		for _, warning := range b.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLAYER\tMANUAL ID\t360 VIDEO\tTHUMBNAIL")
		for _, p := range b.Players() {
			video := "-"
			if p.VideoEntry != "" {
				video = "yes"
			}
			thumbnail := "-"
			if p.ThumbnailEntry != "" {
				thumbnail = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.PlayerID, p.ManualID, video, thumbnail)
		}
		return w.Flush()
	},
}

var (
	bundleExtractPlayer string
	bundleExtractOut    string
)

var bundleExtractCmd = &cobra.Command{
	Use:   "extract <bundle.zip>",
	Short: "Extract a player's 360 media from a bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if bundleExtractPlayer == "" {
			return fmt.Errorf("--player is required")
		}

		b, err := bundle.Open(args[0])
		if err != nil {
			return err
		}
		defer b.Close()

		out := bundleExtractOut
		if out == "" {
			out = "."
		}

		extracted := 0
		if path, err := b.ExtractVideo(bundleExtractPlayer, out); err == nil {
			fmt.Printf("Extracted %s\n", path)
			extracted++
		} else if !isNoMedia(err) {
			return err
		}
		if path, err := b.ExtractThumbnail(bundleExtractPlayer, out); err == nil {
			fmt.Printf("Extracted %s\n", path)
			extracted++
		} else if !isNoMedia(err) {
			return err
		}

		if extracted == 0 {
			return fmt.Errorf("no 360 media for player %s in this bundle", bundleExtractPlayer)
		}
		return nil
	},
}

func isNoMedia(err error) bool {
	return errors.Is(err, bundle.ErrNoMedia)
}

func init() {
	bundleExtractCmd.Flags().StringVar(&bundleExtractPlayer, "player", "", "player id to extract")
	bundleExtractCmd.Flags().StringVarP(&bundleExtractOut, "output", "o", "", "output directory (default: current directory)")

	bundleCmd.AddCommand(bundleInspectCmd)
	bundleCmd.AddCommand(bundleExtractCmd)
	rootCmd.AddCommand(bundleCmd)
}
