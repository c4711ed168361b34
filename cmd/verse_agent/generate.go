package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/verse-generator/internal/config"
	"github.com/jonathan/verse-generator/internal/llm"
	"github.com/jonathan/verse-generator/internal/observability"
	"github.com/jonathan/verse-generator/internal/phonetics"
	"github.com/jonathan/verse-generator/internal/poem"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a four-line rhymed spring poem",
	Long:  "Generates a four-line rhymed Russian spring poem, retrying individual lines and whole poems within bounded attempts. A partial poem with placeholders is reported when the bounds are exhausted.",
	RunE:  runGenerate,
}

var (
	generateConfigFile   string
	generateModel        string
	generateAPIKey       string
	generateAttempts     int
	generateLineAttempts int
	generateTemperature  float64
	generateTimeout      int
	generateVerbose      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Gemini model name (default "+llm.DefaultModel+")")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().IntVar(&generateAttempts, "attempts", 0, "Maximum whole-poem attempts (default 8)")
	generateCmd.Flags().IntVar(&generateLineAttempts, "line-attempts", 0, "Maximum generator calls per line (default 25)")
	generateCmd.Flags().Float64Var(&generateTemperature, "temperature", 0, "Base sampling temperature (default 0.85)")
	generateCmd.Flags().IntVar(&generateTimeout, "timeout", 0, "Per-call generator timeout in seconds (0 = none)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print per-attempt sampling progress")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Model:           generateModel,
		APIKey:          generateAPIKey,
		BaseTemperature: generateTemperature,
		PoemAttempts:    generateAttempts,
		LineAttempts:    generateLineAttempts,
		TimeoutSeconds:  generateTimeout,
		Verbose:         generateVerbose,
	}

	if generateConfigFile != "" {
		fileCfg, err := config.LoadConfig(generateConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	// Surface a malformed stress dictionary before any generation begins.
	if err := phonetics.LoadStressDict(); err != nil {
		return err
	}

	ctx := context.Background()
	generator, err := llm.NewGeminiGenerator(ctx, cfg.Model, apiKey)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}
	defer func() { _ = generator.Close() }()

	var client llm.Generator = generator
	if cfg.TimeoutSeconds > 0 {
		client = llm.WithTimeout(client, time.Duration(cfg.TimeoutSeconds)*time.Second)
	}

	params := llm.DefaultSamplingParams()
	if cfg.BaseTemperature > 0 {
		params.Temperature = float32(cfg.BaseTemperature)
	}

	printer := observability.NewPrinter(os.Stdout, cfg.Verbose)
	orchestrator, err := poem.New(poem.Options{
		Client:       client,
		Params:       params,
		PoemAttempts: cfg.PoemAttempts,
		LineAttempts: cfg.LineAttempts,
		MinWords:     cfg.MinWords,
		MaxWords:     cfg.MaxWords,
		OnProgress:   printer.HandleEvent,
	})
	if err != nil {
		return err
	}

	result, err := orchestrator.Compose(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printer.PrintPoem(result)
	return nil
}
