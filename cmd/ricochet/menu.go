package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/platform/tui"
	"github.com/vovakirdan/tui-ricochet/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start ricochet with a level picker menu",
	Long: `Start ricochet in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
Leaving a game returns you to the menu, which shows your best
result on every cleared level.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  ricochet menu
  ricochet menu --fps 30
  ricochet menu --levels ./my-levels --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		return errors.New("no levels found")
	}

	cleanup, err := setupGame()
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, lvls)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		gameCfg := cfg
		gameCfg.LevelID = menuResult.LevelID
		if err := tui.Run(game, store, gameCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
