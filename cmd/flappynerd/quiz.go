package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gagank1/Flappy-Nerd/internal/quiz"
	"github.com/gagank1/Flappy-Nerd/internal/storage"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Manage the quiz question bank",
	Long: `Inspect and manage the question bank used by the quiz variant.

Examples:
  flappynerd quiz import ./questions.yaml
  flappynerd quiz stats
  flappynerd quiz clear`,
}

var quizImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import questions from a YAML file",
	Long: `Import questions from a YAML file into the database.

The file format matches the built-in bank:

  questions:
    - topic: math
      prompt: "7 x 8"
      correct: "56"
      wrong: "54"

Questions already present (same prompt) are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runQuizImport,
}

var quizStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics",
	Long:  `Display per-question answer statistics, worst accuracy first.`,
	Run:   runQuizStats,
}

var quizClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all recorded answers",
	Long:  `Delete the answer history. The question bank itself is kept.`,
	Run:   runQuizClear,
}

func init() {
	quizCmd.AddCommand(quizImportCmd)
	quizCmd.AddCommand(quizStatsCmd)
	quizCmd.AddCommand(quizClearCmd)
}

func openQuizStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening questions database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runQuizImport(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	bank, err := quiz.ParseBank(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing questions: %v\n", err)
		os.Exit(1)
	}

	store := openQuizStore()
	defer store.Close()

	inserted, err := store.ImportBank(bank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing questions: %v\n", err)
		os.Exit(1)
	}

	total, _ := store.CountQuestions()
	fmt.Printf("Imported %d new questions (%d skipped, %d total in bank).\n",
		inserted, bank.Len()-inserted, total)
}

func runQuizStats(cmd *cobra.Command, args []string) {
	store := openQuizStore()
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No answers recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappynerd play quiz' to start answering questions!")
		return
	}

	fmt.Println("Quiz Stats (worst first)")
	fmt.Println()

	// Calculate prompt column width
	maxPromptLen := 8 // "Question" header
	for _, st := range stats {
		if len(st.Prompt) > maxPromptLen {
			maxPromptLen = len(st.Prompt)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %-6s  %-8s  %s\n", maxPromptLen, "Question", "Topic", "Asked", "Correct", "Accuracy")
	fmt.Printf("  %-*s  %-10s  %-6s  %-8s  %s\n", maxPromptLen, "--------", "-----", "-----", "-------", "--------")

	// Print rows
	for _, st := range stats {
		fmt.Printf("  %-*s  %-10s  %-6d  %-8d  %.0f%%\n",
			maxPromptLen, st.Prompt, st.Topic, st.Asked, st.Correct, st.Accuracy*100)
	}

	// Totals
	asked, correct, err := store.TotalStats()
	if err == nil && asked > 0 {
		fmt.Println()
		fmt.Printf("Overall: %d/%d correct (%.0f%%)\n",
			correct, asked, float64(correct)/float64(asked)*100)
	}
}

func runQuizClear(cmd *cobra.Command, args []string) {
	store := openQuizStore()
	defer store.Close()

	if err := store.ClearAnswers(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing answers: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Answer history cleared.")
}
