package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

// modelFlag overrides the configured model bundle path
var modelFlag string

var rootCmd = &cobra.Command{
	Use:   "parlance",
	Short: "parlance - offline intent classification and slot filling",
	Long: `parlance runs natural-language-understanding inference against a
pre-trained model bundle, fully offline.

Given free-form text it determines the most likely intent and extracts the
structured parameters (slots) associated with it. Models are loaded from a
bundle directory or a packaged .zip archive.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "model bundle path (directory or .zip)")
}
