package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-defense/internal/audio"
	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/games/missiles"
	"github.com/vovakirdan/tui-defense/internal/platform/tui"
)

var (
	flagConfig string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left click    - Fire from the left launcher
  Middle click  - Fire from the center launcher
  Right click   - Fire from the right launcher
  P/Esc         - Pause
  R/Space       - Restart (after game over)
  Q/Ctrl+C      - Quit

Examples:
  defense play
  defense play --sound
  defense play --seed 42
  defense play --config ./my-defense.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable synthesized sound cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	missiles.SetConfigPath(flagConfig)
	game := missiles.New()

	var sound *audio.Manager
	if flagSound {
		sound = audio.NewManager()
		if err := sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize audio: %v\n", err)
			// Continue without sound - game still works
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	if err := tui.Run(game, cfg, sound); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
