// Package scoring evaluates candidate verse lines against a target phonetic
// profile, producing a signed score and a list of named issues.
package scoring

import (
	"fmt"

	"github.com/jonathan/verse-generator/internal/phonetics"
)

// Issue tags reported alongside a score.
const (
	IssueBadRhyme       = "плохая рифма"
	IssueStressMismatch = "несовпадение ударения"
	issueSyllableDiff   = "разница в слогах: %d"
)

// Penalties and bonus applied by Score.
const (
	badRhymePenalty    = 100
	stressPenalty      = 50
	syllableDiffWeight = 10
	perfectionBonus    = 20
)

// Target is the phonetic profile a candidate line is scored against.
// A zero RhymeVowel disables the rhyme check; a nil Stress disables the
// stress check. Stress is set only when the rhyme target is the poem's
// first line.
type Target struct {
	RhymeVowel rune
	Stress     *phonetics.StressInfo
	Syllables  int
}

// SyllableIssue formats the syllable-difference issue tag.
func SyllableIssue(diff int) string {
	return fmt.Sprintf(issueSyllableDiff, diff)
}

// Score rates a candidate line against the target profile. A rhyme miss
// costs 100, a stress-type mismatch 50, and each syllable of difference in
// the last word 10; a candidate with no issues and an exact syllable match
// earns a bonus of 20. Score is pure and deterministic.
func Score(line string, target Target) (int, []string) {
	score := 0
	issues := []string{}

	if target.RhymeVowel != 0 {
		candidate, _ := phonetics.RhymeVowel(line)
		if !phonetics.CheckRhyme(target.RhymeVowel, candidate) {
			score -= badRhymePenalty
			issues = append(issues, IssueBadRhyme)
		}
	}

	if target.Stress != nil && !stressCompatible(line, target.Stress) {
		score -= stressPenalty
		issues = append(issues, IssueStressMismatch)
	}

	diff := phonetics.CountSyllablesInLastWord(line) - target.Syllables
	if diff < 0 {
		diff = -diff
	}
	if diff > 0 {
		score -= diff * syllableDiffWeight
		issues = append(issues, SyllableIssue(diff))
	}

	if diff == 0 && len(issues) == 0 {
		score += perfectionBonus
	}

	return score, issues
}

// stressCompatible reports whether the line's rhyme type matches the
// target's. A line whose stress cannot be determined is incompatible.
func stressCompatible(line string, target *phonetics.StressInfo) bool {
	stress := phonetics.StressPattern(line)
	if stress == nil {
		return false
	}
	return stress.RhymeType() == target.RhymeType()
}
