// Package sampling drives bounded rejection sampling of verse lines against
// an external generator: escalate randomness attempt by attempt, clean and
// validate each draw, score survivors and keep the best.
package sampling

import (
	"context"
	"strings"

	"github.com/jonathan/verse-generator/internal/lineval"
	"github.com/jonathan/verse-generator/internal/llm"
	"github.com/jonathan/verse-generator/internal/scoring"
)

// DefaultMaxAttempts bounds generator calls for a single line. The
// generator is expensive and stochastic; bounding attempts is the cost
// control.
const DefaultMaxAttempts = 25

// temperatureStep is added to the base temperature on each retry, capped at
// maxTemperature, to buy diversity on later attempts.
const (
	temperatureStep = 0.02
	maxTemperature  = 1.0
)

// Candidate is a cleaned line together with its score and issues.
type Candidate struct {
	Line   string
	Score  int
	Issues []string
}

// Perfect reports whether the candidate met every constraint.
func (c *Candidate) Perfect() bool {
	return c.Score >= 0 && len(c.Issues) == 0
}

// Sampler produces at most one accepted line per call by rejection
// sampling against the injected generator.
type Sampler struct {
	Client      llm.Generator
	Base        llm.SamplingParams
	MaxAttempts int
	MinWords    int
	MaxWords    int
	// Progress, when set, is notified with the attempt index on every
	// fifth rejected draw.
	Progress func(attempt, max int)
}

// New returns a Sampler with default attempt budget, word bounds and
// sampling settings.
func New(client llm.Generator) *Sampler {
	return &Sampler{
		Client:      client,
		Base:        llm.DefaultSamplingParams(),
		MaxAttempts: DefaultMaxAttempts,
		MinWords:    lineval.DefaultMinWords,
		MaxWords:    lineval.DefaultMaxWords,
	}
}

// Sample draws up to MaxAttempts candidates for prompt, rejecting draws
// that fail structural validity, duplicate an existing line, or are shorter
// than lineval.MinLineLength after cleaning. A candidate meeting every
// constraint is accepted immediately; otherwise the best-scoring candidate
// seen is returned, or nil when no draw survived. A transport failure on
// one draw counts as a rejected attempt; only context cancellation aborts.
func (s *Sampler) Sample(ctx context.Context, prompt string, target scoring.Target, existing []string) (*Candidate, error) {
	var best *Candidate

	for attempt := 0; attempt < s.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		params := s.Base
		params.Temperature = s.Base.Temperature + float32(attempt)*temperatureStep
		if params.Temperature > maxTemperature {
			params.Temperature = maxTemperature
		}

		text, err := s.Client.GenerateLine(ctx, prompt, params)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.reportProgress(attempt)
			continue
		}

		line := lineval.Clean(strings.TrimSpace(strings.Replace(text, prompt, "", 1)))

		if !lineval.IsValid(line, s.MinWords, s.MaxWords) ||
			lineval.IsDuplicate(line, existing) ||
			lineval.RuneLen(line) < lineval.MinLineLength {
			s.reportProgress(attempt)
			continue
		}

		score, issues := scoring.Score(line, target)
		candidate := &Candidate{Line: line, Score: score, Issues: issues}

		if best == nil || candidate.Score > best.Score {
			best = candidate
		}
		if candidate.Perfect() {
			return candidate, nil
		}
	}

	return best, nil
}

func (s *Sampler) reportProgress(attempt int) {
	if s.Progress != nil && attempt%5 == 0 {
		s.Progress(attempt+1, s.MaxAttempts)
	}
}
