package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/match-moments-cli/gamelog"
)

// Filter flags shared by log list, play all, and clips.
var (
	flagPlayer          string
	flagAction          string
	flagMatchHighlights bool
	flagPlayerHighlight bool
	flagDeleted         bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Work with game-log files",
	Long:  `Validate, list, filter, and export pipe-delimited game logs.`,
}

var logCheckCmd = &cobra.Command{
	Use:   "check <log-file>",
	Short: "Validate a game log",
	Long:  `Parse a game log and report its moment count plus any lines that were skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, warnings, err := loadLog(args[0])
		if err != nil {
			return err
		}

		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		fmt.Printf("%s: %d moments, %d players, %d warnings\n",
			filepath.Base(args[0]), store.Len(), len(store.PlayerIDs()), len(warnings))
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list <log-file>",
	Short: "List moments from a game log",
	Long:  `Display the moments of a game log as a table, optionally filtered by player, action, or highlight flags.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadLog(args[0])
		if err != nil {
			return err
		}

		moments := gamelog.VisibleMoments(store, selectionFromFlags())
		if len(moments) == 0 {
			fmt.Println("No moments match the given filters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "IN\tOUT\tPLAYER\tEVENT\tMARKS")
		for _, m := range moments {
			marks := ""
			if m.MatchHighlight {
				marks += "★"
			}
			if m.PlayerHighlight {
				marks += "◆"
			}
			if m.Edited {
				marks += "e"
			}
			if m.Inserted {
				marks += "i"
			}
			if m.Deleted {
				marks += "d"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				gamelog.FormatTimecode(m.Inpoint),
				gamelog.FormatTimecode(m.Outpoint),
				m.PlayerName,
				m.Event,
				marks)
		}
		return w.Flush()
	},
}

var logPlayersCmd = &cobra.Command{
	Use:   "players <log-file>",
	Short: "List players observed in a game log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadLog(args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tJERSEY\tMANUAL ID\tMOMENTS")
		for _, id := range store.PlayerIDs() {
			info, _ := store.Player(id)
			count := len(gamelog.VisibleMoments(store, gamelog.PlayerSelection(id, gamelog.ActionAll)))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", id, info.Name, info.Jersey, info.ManualID, count)
		}
		return w.Flush()
	},
}

var logExportOutput string

var logExportCmd = &cobra.Command{
	Use:   "export <log-file>",
	Short: "Re-export a game log in canonical form",
	Long: `Parse a game log and write it back out in the canonical format:
full audit columns, lowercase flags, deleted moments omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadLog(args[0])
		if err != nil {
			return err
		}

		out := logExportOutput
		if out == "" {
			out = filepath.Join(filepath.Dir(args[0]), gamelog.ExportFilename)
		}
		if err := gamelog.WriteExport(store, out); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("Exported %d moments to %s\n", store.Len(), out)
		return nil
	},
}

// loadLog reads and parses a game-log file.
func loadLog(path string) (*gamelog.Store, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read log file: %w", err)
	}
	store, warnings, err := gamelog.Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return store, warnings, nil
}

// selectionFromFlags builds a view selection from the shared filter flags.
func selectionFromFlags() gamelog.Selection {
	var sel gamelog.Selection
	if flagPlayer != "" {
		sel = gamelog.PlayerSelection(flagPlayer, flagAction)
		if flagPlayerHighlight {
			sel.Action = gamelog.PlayerHighlightsAction
		}
	} else {
		sel = gamelog.MatchSelection(flagAction)
		if flagMatchHighlights {
			sel.Action = gamelog.MatchHighlightsAction
		}
	}
	sel.ShowDeleted = flagDeleted
	return sel
}

// addFilterFlags registers the shared filter flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlayer, "player", "", "limit to one player id")
	cmd.Flags().StringVar(&flagAction, "action", "", "limit to one action label")
	cmd.Flags().BoolVar(&flagMatchHighlights, "match-highlights", false, "only match highlights")
	cmd.Flags().BoolVar(&flagPlayerHighlight, "player-highlights", false, "only player highlight-reel moments")
}

// parseIndexArg parses a 1-based moment index argument.
func parseIndexArg(arg string, count int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid moment index: %s", arg)
	}
	if idx < 1 || idx > count {
		return 0, fmt.Errorf("moment index %d out of range (1-%d)", idx, count)
	}
	return idx - 1, nil
}

func init() {
	addFilterFlags(logListCmd)
	logListCmd.Flags().BoolVar(&flagDeleted, "deleted", false, "include soft-deleted moments")
	logExportCmd.Flags().StringVarP(&logExportOutput, "output", "o", "", "output path (default: game_log_updated.txt next to the input)")

	logCmd.AddCommand(logCheckCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logPlayersCmd)
	logCmd.AddCommand(logExportCmd)
	rootCmd.AddCommand(logCmd)
}
