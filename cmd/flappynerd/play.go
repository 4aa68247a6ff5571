package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/platform/tui"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Space/Up/W - Flap
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Mouse clicks and taps also flap.

Examples:
  flappynerd play classic
  flappynerd play mobile
  flappynerd play quiz
  flappynerd play classic --config ./my-tuning.yaml
  flappynerd play classic --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := args[0]

	// Check if variant exists
	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'flappynerd list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create variant instance
	game, err := registry.Create(variantID, registry.Options{
		ConfigPath: flagConfig,
		DBPath:     flagDBPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running variant: %v\n", err)
		os.Exit(1)
	}
}
