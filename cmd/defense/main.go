// defense is a terminal missile-defense game: protect your cities from
// falling threats by firing interceptors from three launchers.
//
// Usage:
//
//	defense play             - Play in the current terminal
//	defense serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defense",
	Short: "Missile defense in your terminal",
	Long: `Defense is a terminal missile-defense game. Threats rain down on your
cities; shoot them out of the sky with interceptors fired from three
launchers, aimed with the mouse.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  defense play
  defense play --seed 42 --sound
  defense serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
