package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/registry"
	"github.com/vovakirdan/tui-ricochet/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and level records",
	Long: `Display the top 10 scores for a mode (default: ricochet) followed by
the best result recorded on each level.

Examples:
  ricochet scores
  ricochet scores ricochet_sandbox
  ricochet scores --recent 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also show this many recent runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	modeID := "ricochet"
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q", modeID)
	}
	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Money", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  $%-9d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	results, err := store.AllLevelResults()
	if err != nil {
		return err
	}
	if len(results) > 0 {
		lvls, lvlErr := loadLevels()
		if lvlErr != nil {
			return lvlErr
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Levels:")
		fmt.Fprintf(out, "  %-24s  %-8s  %-5s  %s\n", "Level", "Best", "Runs", "Clears")
		for _, l := range lvls {
			r, ok := results[l.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %-24s  $%-7d  %-5d  %d\n", l.Title(), r.BestMoney, r.FewestRuns, r.Completions)
		}
	}

	if flagRecent > 0 {
		runs, err := store.RecentRuns("", flagRecent)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recent runs:")
		for _, r := range runs {
			fmt.Fprintf(out, "  %s  %-16s #%-3d %-14s %5.1fs  %d bags  $%d\n",
				r.CreatedAt.Format("01-02 15:04"), r.LevelID, r.Run, r.Outcome, r.Duration, r.Collected, r.Money)
		}
	}

	return nil
}
