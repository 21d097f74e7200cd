package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/pkg/clips"
)

var clipsCmd = &cobra.Command{
	Use:   "clips <video-file> <log-file>",
	Short: "Export moments as video clips",
	Long: `Export the filtered moments of a game log as standalone clips using
ffmpeg stream copy. Without filters this exports the match highlights.
Clips land under {videoDir}/clips/{video}/{player}/.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := resolveVideoPath(args[0])
		if err != nil {
			return err
		}
		store, _, err := loadLog(args[1])
		if err != nil {
			return err
		}

		sel := selectionFromFlags()
		// Exporting everything is rarely wanted; default to highlights.
		if flagPlayer == "" && flagAction == "" && !flagMatchHighlights && !flagPlayerHighlight {
			sel.Action = gamelog.MatchHighlightsAction
		}

		moments := gamelog.VisibleMoments(store, sel)
		if len(moments) == 0 {
			return fmt.Errorf("no moments match the given filters")
		}

		fmt.Printf("Exporting %d clips...\n", len(moments))
		failed := 0
		for _, m := range moments {
			outputPath := clips.BuildClipPath(videoPath, m)
			if err := clips.Export(videoPath, m, outputPath); err != nil {
				fmt.Fprintf(os.Stderr, "failed: %s: %v\n", outputPath, err)
				failed++
				continue
			}
			fmt.Printf("  %s\n", outputPath)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d clips failed", failed, len(moments))
		}
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	addFilterFlags(clipsCmd)
	rootCmd.AddCommand(clipsCmd)
}
