// Package llm defines the external text-generator contract and a
// Gemini-backed implementation of it.
package llm

// SamplingParams is the sampling configuration passed to a Generator on
// every call. It mirrors the full contract of the external collaborator;
// a concrete backend maps the fields its API supports and ignores the rest.
type SamplingParams struct {
	Temperature       float32
	TopP              float32
	TopK              int32
	RepetitionPenalty float32
	MaxNewTokens      int32
	NoRepeatNgramSize int
	PadTokenID        int
}

// DefaultSamplingParams returns the generation settings used for verse
// lines: a balance between creativity and predictability.
func DefaultSamplingParams() SamplingParams {
	return SamplingParams{
		Temperature:       0.85,
		TopP:              0.92,
		TopK:              50,
		RepetitionPenalty: 1.3,
		MaxNewTokens:      20,
		NoRepeatNgramSize: 2,
		PadTokenID:        50256,
	}
}
