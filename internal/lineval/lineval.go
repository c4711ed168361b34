// Package lineval provides structural validation, cleaning and duplicate
// detection for candidate verse lines.
package lineval

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default word-count bounds for a verse line.
const (
	DefaultMinWords = 3
	DefaultMaxWords = 8
)

// MinLineLength is the minimum length in runes of a cleaned line. It is
// applied by callers before acceptance; it composes with word-count
// validity rather than replacing it.
const MinLineLength = 8

var (
	// wordPattern accepts only Russian letters and hyphens inside a word.
	wordPattern = regexp.MustCompile(`^[а-яёА-ЯЁ-]+$`)
	// strip removes everything except Russian letters, whitespace and hyphens.
	strip      = regexp.MustCompile(`[^а-яёА-ЯЁ\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// IsValid reports whether text is a structurally acceptable verse line:
// non-empty, word count within [minWords, maxWords], and every word made of
// Russian letters and hyphens only.
func IsValid(text string, minWords, maxWords int) bool {
	if text == "" {
		return false
	}
	words := strings.Fields(text)
	if len(words) < minWords || len(words) > maxWords {
		return false
	}
	for _, word := range words {
		if !wordPattern.MatchString(word) {
			return false
		}
	}
	return true
}

// IsDuplicate reports whether line equals any existing non-empty line,
// compared case-insensitively.
func IsDuplicate(line string, existing []string) bool {
	if line == "" {
		return false
	}
	lower := strings.ToLower(line)
	for _, e := range existing {
		if e != "" && lower == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Clean strips everything that is not a Russian letter, whitespace or
// hyphen, collapses whitespace runs to single spaces, and removes leading
// and trailing hyphens. Clean is idempotent.
func Clean(raw string) string {
	cleaned := strip.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(whitespace.ReplaceAllString(cleaned, " "))
	return strings.Trim(cleaned, "- ")
}

// RuneLen is the length of a line in runes, used against MinLineLength.
func RuneLen(line string) int {
	return utf8.RuneCountInString(line)
}
