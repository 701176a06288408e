// ricochet is a terminal physics puzzle: place pads, boosters and planks,
// then drop a ball and bounce it through every money bag.
//
// Usage:
//
//	ricochet play [level]     - Play the campaign, optionally from a level
//	ricochet menu             - Pick a level interactively
//	ricochet levels           - List available levels
//	ricochet serve            - Start SSH server for remote play
//	ricochet scores           - Show high scores and level records
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.ricochet/scores.db)
//	--config <path>       - Custom game config YAML
//	--levels <dir>        - Load levels from a directory
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log <path>          - Write debug logs to a file
//	--mute                - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ricochet/internal/audio"
	"github.com/vovakirdan/tui-ricochet/internal/config"
	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/games/ricochet"
	"github.com/vovakirdan/tui-ricochet/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogPath    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ricochet",
	Short: "Ricochet - a bouncing-ball puzzle for your terminal",
	Long: `Ricochet is a terminal physics puzzle. Each level gives you a few
pads, boosters and planks. Place them, drop the ball and bounce it
through enough money bags to clear the level.

Available commands:
  play     - Play the campaign directly
  menu     - Interactive level picker
  levels   - Show all available levels
  serve    - Start SSH server for remote play
  scores   - View high scores and level records

Examples:
  ricochet play
  ricochet play 02-side-step --difficulty hard
  ricochet menu --levels ./my-levels
  ricochet serve --ssh :2222
  ricochet scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ricochet/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupGame applies the global flags to the ricochet package. The returned
// function releases the log file and the audio device.
func setupGame() (func(), error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	ricochet.SetConfigPath(flagConfig)
	ricochet.SetDifficultyPreset(flagDifficulty)
	ricochet.SetLevelsDir(flagLevelsDir)

	var closers []func()
	logger, logFile, err := openLogger(flagLogPath)
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		closers = append(closers, func() { logFile.Close() })
	}
	ricochet.SetLogger(logger)

	if cfg.Audio.Enabled && !flagMute {
		player, audioErr := audio.Init(cfg.Audio.Volume)
		if audioErr != nil {
			logger.Warn("audio disabled", "error", audioErr)
		} else {
			ricochet.SetAudio(player)
			closers = append(closers, player.Close)
		}
	}

	return func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}

// openLogger returns a debug logger writing to path, or a discarding
// logger when path is empty. The terminal belongs to the game.
func openLogger(path string) (*log.Logger, *os.File, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "ricochet",
	})
	return logger, f, nil
}

// loadLevels loads the level set selected by --levels.
func loadLevels() ([]levels.Level, error) {
	loader := levels.Builtin()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	return loader.LoadAll()
}

// runtimeConfig builds a config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
