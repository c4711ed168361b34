// Package main provides the entry point for the verse generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verse_agent",
	Short: "Russian rhymed-verse generator",
	Long:  "verse_agent generates four-line rhymed Russian verse by rejection-sampling candidate lines from a text-generation model against phonetic constraints (rhyme, stress, syllable count).",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
