package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gagank1/Flappy-Nerd/internal/core"
	"github.com/gagank1/Flappy-Nerd/internal/platform/tui"
	"github.com/gagank1/Flappy-Nerd/internal/registry"
	"github.com/gagank1/Flappy-Nerd/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a round ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Quiz stats
  Q            - Quit

Examples:
  flappynerd menu
  flappynerd menu --fps 30
  flappynerd menu --db ./questions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open question storage (only the quiz board needs it)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open questions database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from stats board
		}

		variantID := menuResult.VariantID
		if variantID == "" {
			break
		}

		game, err := registry.Create(variantID, registry.Options{
			DBPath: flagDBPath,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
			continue
		}

		// Fresh seed for each round
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running variant: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
