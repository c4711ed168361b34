package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/verse-generator/internal/observability"
	"github.com/jonathan/verse-generator/internal/phonetics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [line]",
	Short: "Print a phonetic report for a verse line",
	Long:  "Analyzes a single Russian verse line offline: syllable count of the last word, rhyme vowel and its equivalence group, stress position and rhyme type.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	line := strings.TrimSpace(strings.Join(args, " "))
	if line == "" {
		return fmt.Errorf("line must not be empty")
	}

	if err := phonetics.LoadStressDict(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout, false)
	printer.PrintAnalysis(line)
	return nil
}
