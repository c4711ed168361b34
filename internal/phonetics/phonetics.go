// Package phonetics provides phonetic analysis of Russian verse lines:
// syllable counting, rhyme-vowel extraction, stress lookup and rhyme-type
// classification.
//
// Stress detection for words missing from the dictionary uses a positional
// heuristic (the second-to-last vowel is assumed stressed). This is an
// approximation, not real accentology.
package phonetics

import "strings"

// vowels is the Russian vowel alphabet used for syllable and rhyme analysis.
const vowels = "аеёиоуыэюя"

// IsVowel reports whether r is a Russian vowel.
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// CountSyllables counts syllables in a word by counting its vowels.
func CountSyllables(word string) int {
	count := 0
	for _, r := range strings.ToLower(word) {
		if IsVowel(r) {
			count++
		}
	}
	return count
}

// CountSyllablesInLastWord counts syllables in the last word of a line.
// Returns 0 for an empty line or a line without words.
func CountSyllablesInLastWord(line string) int {
	word, ok := lastWord(line)
	if !ok {
		return 0
	}
	return CountSyllables(word)
}

// lastWord returns the lowercased final whitespace-delimited token of a line.
func lastWord(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", false
	}
	return strings.ToLower(words[len(words)-1]), true
}
