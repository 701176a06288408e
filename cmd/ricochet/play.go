package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/games/ricochet"
	"github.com/vovakirdan/tui-ricochet/internal/levels"
	"github.com/vovakirdan/tui-ricochet/internal/platform/tui"
	"github.com/vovakirdan/tui-ricochet/internal/storage"
)

var flagSandbox bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start the campaign, optionally from a specific level.

Controls:
  Arrows/WASD      - Move the placement cursor
  Enter            - Place the selected item
  X/Backspace      - Remove the item under the cursor
  Tab              - Cycle inventory
  R/T              - Rotate (Shift: fine, [ ]: coarse)
  Space            - Drop the ball / stop the run
  P                - Pause
  Ctrl+R           - Restart the level
  Ctrl+S           - Save a screenshot
  Esc/B            - Quit (while the ball is at rest)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Extra items and livelier walls
  normal - Level as designed
  hard   - Deader walls, pads and planks

Examples:
  ricochet play
  ricochet play 03-boost-lane
  ricochet play --sandbox
  ricochet play --difficulty hard --config ./my-ricochet.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSandbox, "sandbox", false, "Play with a generous inventory")
}

func runPlay(_ *cobra.Command, args []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		return errors.New("no levels found")
	}

	cfg := runtimeConfig()
	if len(args) == 1 {
		cfg.LevelID = args[0]
		if !hasLevel(lvls, cfg.LevelID) {
			return fmt.Errorf("unknown level %q (run 'ricochet levels' to list them)", cfg.LevelID)
		}
	}

	cleanup, err := setupGame()
	if err != nil {
		return err
	}
	defer cleanup()

	game := ricochet.New()
	if flagSandbox {
		game = ricochet.NewSandbox()
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg)
}

// openStore opens the scores database, or returns nil so the game still
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func hasLevel(lvls []levels.Level, id string) bool {
	for _, l := range lvls {
		if l.ID == id {
			return true
		}
	}
	return false
}
