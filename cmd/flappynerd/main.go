// flappynerd is a terminal side-scroller where you steer a nerd through
// an endless field of pipes.
//
// Usage:
//
//	flappynerd list              - List available variants
//	flappynerd play <variant>    - Play a variant
//	flappynerd menu              - Start menu to pick variants interactively
//	flappynerd serve             - Start SSH server for remote play
//	flappynerd quiz              - Manage the quiz question bank
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flappynerd/flappynerd.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/gagank1/Flappy-Nerd/internal/variants/classic"
	_ "github.com/gagank1/Flappy-Nerd/internal/variants/mobile"
	_ "github.com/gagank1/Flappy-Nerd/internal/variants/quizmode"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappynerd",
	Short: "Flappy Nerd - Dodge pipes in your terminal",
	Long: `Flappy Nerd is a terminal side-scroller. Flap to stay airborne,
slip through the gaps, and don't touch anything.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  quiz     - Manage the quiz question bank

Examples:
  flappynerd list
  flappynerd play classic
  flappynerd menu
  flappynerd serve --ssh :2222
  flappynerd quiz stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappynerd/flappynerd.db", "Path to questions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quizCmd)
}
