package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gagank1/Flappy-Nerd/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all registered game variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print variants
	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flappynerd play <id>' to play a variant.")
}
