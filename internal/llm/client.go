package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator is the external stochastic text generator. Implementations
// return generated text for a prompt; the returned text may or may not
// include the prompt as a prefix, callers strip it when present.
type Generator interface {
	// GenerateLine generates a continuation for prompt using params.
	GenerateLine(ctx context.Context, prompt string, params SamplingParams) (string, error)
	// Close releases any resources held by the generator.
	Close() error
}

// GenerationError represents a failure talking to the generator backend.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// GeminiGenerator implements Generator for Google Gemini.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator. Construction
// failure is fatal to a run and must be surfaced before any line
// generation begins.
func NewGeminiGenerator(ctx context.Context, model, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, &GenerationError{Message: "API key is required"}
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &GenerationError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateLine generates text for the prompt. Gemini supports temperature,
// top-p, top-k and a token budget; repetition-penalty, n-gram and
// pad-token settings have no Gemini equivalent and are not mapped.
func (g *GeminiGenerator) GenerateLine(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(params.Temperature)
	model.SetTopP(params.TopP)
	model.SetTopK(params.TopK)
	model.SetMaxOutputTokens(params.MaxNewTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: "failed to generate content", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the generator.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &GenerationError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GenerationError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &GenerationError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
