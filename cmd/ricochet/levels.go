package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/levels"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels that play and menu will use: the built-in set,
or the directory given with --levels.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parses each level file (.yaml, .yml, .ql or .level) and reports
the first problem found in each.

Examples:
  ricochet levels check ./my-levels/04-drop-zone.yaml
  ricochet levels check ./my-levels/*.ql`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	levelsCmd.AddCommand(checkCmd)
}

func runLevels(cmd *cobra.Command, _ []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(lvls) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-4s  %-20s  %s\n", maxIDLen, "ID", "Bags", "Inventory", "Title")
	fmt.Fprintf(out, "  %-*s  %-4s  %-20s  %s\n", maxIDLen, "--", "----", "---------", "-----")

	for _, l := range lvls {
		bags := fmt.Sprintf("%d/%d", l.Layout.MoneyBagsNeeded, len(l.Layout.MoneyBags))
		fmt.Fprintf(out, "  %-*s  %-4s  %-20s  %s\n", maxIDLen, l.ID, bags, inventorySummary(l.Layout.Inventory), l.Title())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'ricochet play <id>' to play a level.")
	return nil
}

// inventorySummary formats an inventory as "2 pad, 1 plank".
func inventorySummary(inv map[world.Item]int) string {
	items := make([]world.Item, 0, len(inv))
	for it, n := range inv {
		if n > 0 {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		return "-"
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })

	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%d %s", inv[it], it)
	}
	return strings.Join(parts, ", ")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, p := range args {
		loader := levels.NewLoader(filepath.Dir(p))
		lvl, err := loader.LoadFile(filepath.Base(p))
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", p, err)
			continue
		}
		fmt.Fprintf(out, "ok    %s (%s, %d obstacles, %d bags)\n",
			p, lvl.ID, len(lvl.Layout.Obstacles), len(lvl.Layout.MoneyBags))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed", failed, len(args))
	}
	return nil
}
