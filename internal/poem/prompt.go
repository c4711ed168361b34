package poem

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/verse-generator/internal/phonetics"
	"github.com/jonathan/verse-generator/internal/prompts"
)

const promptFile = "generation.json"

// lineTarget carries the rhyme requirements a continuation prompt embeds:
// the 0-based target line index, its rhyme vowel, and the pre-rendered
// stress and syllable requirement phrases (set only for the line-0 target).
type lineTarget struct {
	index     int
	vowel     rune
	stressReq string
	syllReq   string
}

func buildFirstLinePrompt() string {
	return prompts.MustGet(promptFile, "first-line")
}

// buildContinuationPrompt embeds the previously generated lines and, when a
// rhyme target exists, a human-readable description of the required rhyme
// vowel group and any stress/syllable requirements.
func buildContinuationPrompt(line int, prior []string, target *lineTarget) string {
	previous := strings.Join(prior, "\n")

	if target != nil && target.vowel != 0 {
		group := phonetics.VowelGroup(target.vowel)
		vowels := make([]string, len(group))
		for i, v := range group {
			vowels[i] = string(v)
		}
		return prompts.Format(prompts.MustGet(promptFile, "continue-rhymed"), map[string]string{
			"Line":                 strconv.Itoa(line + 1),
			"Target":               strconv.Itoa(target.index + 1),
			"StressRequirement":    target.stressReq,
			"SyllablesRequirement": target.syllReq,
			"Vowels":               strings.Join(vowels, "', '"),
			"Previous":             previous,
		})
	}

	return prompts.Format(prompts.MustGet(promptFile, "continue-plain"), map[string]string{
		"Line":     strconv.Itoa(line + 1),
		"Previous": previous,
	})
}

func stressRequirement(t phonetics.RhymeType) string {
	return prompts.Format(prompts.MustGet(promptFile, "stress-requirement"), map[string]string{
		"RhymeType": t.String(),
	})
}

func syllablesRequirement(count int) string {
	return prompts.Format(prompts.MustGet(promptFile, "syllables-requirement"), map[string]string{
		"Syllables": strconv.Itoa(count),
	})
}

var (
	stressPhraseRe   = regexp.MustCompile(` с .*? рифмой`)
	syllablePhraseRe = regexp.MustCompile(` и \d+ слогами`)
)

// relaxPrompt strips the rhyme, stress and syllable phrasing from a
// continuation prompt for the constraint-relaxation fallback.
func relaxPrompt(prompt string) string {
	relaxed := strings.Replace(prompt, "должна рифмоваться", "должна продолжаться", 1)
	relaxed = stressPhraseRe.ReplaceAllString(relaxed, "")
	return syllablePhraseRe.ReplaceAllString(relaxed, "")
}
