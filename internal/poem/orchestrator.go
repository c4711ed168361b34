package poem

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/verse-generator/internal/lineval"
	"github.com/jonathan/verse-generator/internal/llm"
	"github.com/jonathan/verse-generator/internal/phonetics"
	"github.com/jonathan/verse-generator/internal/sampling"
	"github.com/jonathan/verse-generator/internal/scoring"
)

// DefaultPoemAttempts bounds whole-poem retries.
const DefaultPoemAttempts = 8

// Placeholder marks a line slot that could not be generated.
const Placeholder = "[не сгенерировалась]"

// Sampling settings for the relaxed fallback call.
const (
	fallbackTemperature = 0.9
	fallbackTopP        = 0.95
)

// ProgressEvent reports generation progress to the caller.
type ProgressEvent struct {
	RunID   string `json:"run_id"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ProgressCallback is called as generation progresses.
type ProgressCallback func(event ProgressEvent)

// Options configures an Orchestrator.
type Options struct {
	Client       llm.Generator // required
	Params       llm.SamplingParams
	PoemAttempts int
	LineAttempts int
	MinWords     int
	MaxWords     int
	OnProgress   ProgressCallback
}

// Result is the outcome of one generation run. Lines may contain empty
// strings for unresolved slots; Complete is true only when all four lines
// were filled. Stress and Syllables describe the first line's last word and
// are set once line 1 was rhymed against line 0.
type Result struct {
	Lines      [LineCount]string
	SchemeName string
	Stress     *phonetics.StressInfo
	Syllables  int
	Complete   bool
	RunID      string
}

// EmptySlots counts unresolved lines.
func (r *Result) EmptySlots() int {
	count := 0
	for _, line := range r.Lines {
		if line == "" {
			count++
		}
	}
	return count
}

// Orchestrator drives the four-line poem state machine around an injected
// generator. It holds no state across runs; every Compose call starts
// fresh.
type Orchestrator struct {
	client       llm.Generator
	sampler      *sampling.Sampler
	poemAttempts int
	onProgress   ProgressCallback
}

// New creates an Orchestrator. The generator client is required; zero
// option fields fall back to defaults.
func New(opts Options) (*Orchestrator, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("generator client is required")
	}

	sampler := sampling.New(opts.Client)
	if opts.Params != (llm.SamplingParams{}) {
		sampler.Base = opts.Params
	}
	if opts.LineAttempts > 0 {
		sampler.MaxAttempts = opts.LineAttempts
	}
	if opts.MinWords > 0 {
		sampler.MinWords = opts.MinWords
	}
	if opts.MaxWords > 0 {
		sampler.MaxWords = opts.MaxWords
	}

	poemAttempts := opts.PoemAttempts
	if poemAttempts <= 0 {
		poemAttempts = DefaultPoemAttempts
	}

	return &Orchestrator{
		client:       opts.Client,
		sampler:      sampler,
		poemAttempts: poemAttempts,
		onProgress:   opts.OnProgress,
	}, nil
}

// Compose generates a poem, retrying the whole four-line procedure up to
// the poem-attempt bound and stopping at the first complete result. When
// every attempt leaves unresolved slots, the last partial result is
// returned rather than an error.
func (o *Orchestrator) Compose(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	var last *Result

	for attempt := 1; attempt <= o.poemAttempts; attempt++ {
		o.emit(runID, "attempt", fmt.Sprintf("попытка генерации #%d", attempt))

		result, err := o.composeOnce(ctx, runID)
		if err != nil {
			return nil, err
		}
		result.RunID = runID
		last = result

		if result.Complete {
			o.emit(runID, "result", fmt.Sprintf("полное стихотворение получено за %d попыток", attempt))
			return result, nil
		}
		o.emit(runID, "attempt", fmt.Sprintf("не все строки сгенерировались, пропущено строк: %d", result.EmptySlots()))
	}

	o.emit(runID, "result", "достигнуто максимальное количество попыток")
	return last, nil
}

// composeOnce runs one pass over the four line slots.
func (o *Orchestrator) composeOnce(ctx context.Context, runID string) (*Result, error) {
	scheme := pickScheme(Schemes())
	result := &Result{SchemeName: scheme.Name()}

	var firstStress *phonetics.StressInfo
	firstStressSet := false
	firstSyllables := 0

	for i := 0; i < LineCount; i++ {
		var target scoring.Target
		var lt *lineTarget

		if targetIdx, ok := scheme.Target(i); ok && result.Lines[targetIdx] != "" {
			targetLine := result.Lines[targetIdx]
			vowel, _ := phonetics.RhymeVowel(targetLine)
			lt = &lineTarget{index: targetIdx, vowel: vowel}

			// The first line's stress profile is analyzed once and reused;
			// stress matching is defined only for the line-0 pair.
			if targetIdx == 0 && !firstStressSet {
				firstStress = phonetics.StressPattern(targetLine)
				firstSyllables = phonetics.CountSyllablesInLastWord(targetLine)
				firstStressSet = true
				if firstStress != nil {
					lt.stressReq = stressRequirement(firstStress.RhymeType())
					lt.syllReq = syllablesRequirement(firstSyllables)
				}
			}

			target.RhymeVowel = vowel
			target.Syllables = phonetics.CountSyllablesInLastWord(targetLine)
			if targetIdx == 0 {
				target.Stress = firstStress
			}
		}

		var prompt string
		if i == 0 {
			prompt = buildFirstLinePrompt()
		} else {
			prompt = buildContinuationPrompt(i, result.Lines[:i], lt)
		}

		lineNum := i + 1
		o.sampler.Progress = func(attempt, max int) {
			o.emit(runID, "progress", fmt.Sprintf("попытка %d/%d для строки %d", attempt, max, lineNum))
		}

		candidate, err := o.sampler.Sample(ctx, prompt, target, result.Lines[:i])
		if err != nil {
			return nil, err
		}

		if candidate != nil {
			result.Lines[i] = candidate.Line
			o.emit(runID, "line", acceptedMessage(lineNum, candidate, lt))
			continue
		}

		o.emit(runID, "fallback",
			fmt.Sprintf("не удалось найти хорошую рифму для строки %d, пробуем без строгих ограничений", lineNum))

		line, err := o.relaxedFallback(ctx, prompt, result.Lines[:i])
		if err != nil {
			return nil, err
		}
		if line != "" {
			result.Lines[i] = line
			o.emit(runID, "line", fmt.Sprintf("✓ Строка %d (без строгой рифмы): %s", lineNum, line))
		} else {
			o.emit(runID, "line", fmt.Sprintf("✗ Строка %d: %s", lineNum, Placeholder))
		}
	}

	result.Stress = firstStress
	result.Syllables = firstSyllables
	result.Complete = result.EmptySlots() == 0
	return result, nil
}

// relaxedFallback makes one unconstrained generator call with the relaxed
// prompt and accepts the result only if it is structurally valid and not a
// duplicate. A transport failure simply leaves the slot unresolved.
func (o *Orchestrator) relaxedFallback(ctx context.Context, prompt string, existing []string) (string, error) {
	relaxed := relaxPrompt(prompt)

	params := o.sampler.Base
	params.Temperature = fallbackTemperature
	params.TopP = fallbackTopP

	text, err := o.client.GenerateLine(ctx, relaxed, params)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", nil
	}

	line := lineval.Clean(strings.TrimSpace(strings.Replace(text, relaxed, "", 1)))
	if lineval.IsValid(line, o.sampler.MinWords, o.sampler.MaxWords) && !lineval.IsDuplicate(line, existing) {
		return line, nil
	}
	return "", nil
}

// acceptedMessage renders the per-line acceptance report, including rhyme
// and syllable details when the line had a rhyme target.
func acceptedMessage(lineNum int, candidate *sampling.Candidate, target *lineTarget) string {
	if target == nil || target.vowel == 0 {
		return fmt.Sprintf("✓ Строка %d: %s", lineNum, candidate.Line)
	}

	var sb strings.Builder
	if candidate.Perfect() {
		currentVowel, _ := phonetics.RhymeVowel(candidate.Line)
		fmt.Fprintf(&sb, "✓ Строка %d: %s [рифма со строкой %d: %s→%s",
			lineNum, candidate.Line, target.index+1, string(target.vowel), string(currentVowel))
		if stress := phonetics.StressPattern(candidate.Line); stress != nil {
			fmt.Fprintf(&sb, " [%s рифма]", stress.RhymeType())
		}
		fmt.Fprintf(&sb, " [слоги: %d]]", phonetics.CountSyllablesInLastWord(candidate.Line))
		return sb.String()
	}

	fmt.Fprintf(&sb, "✓ Строка %d (лучший вариант): %s [слоги: %d]",
		lineNum, candidate.Line, phonetics.CountSyllablesInLastWord(candidate.Line))
	if len(candidate.Issues) > 0 {
		fmt.Fprintf(&sb, " [проблемы: %s]", strings.Join(candidate.Issues, ", "))
	}
	return sb.String()
}

func (o *Orchestrator) emit(runID, stage, message string) {
	if o.onProgress != nil {
		o.onProgress(ProgressEvent{RunID: runID, Stage: stage, Message: message})
	}
}
