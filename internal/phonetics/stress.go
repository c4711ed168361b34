package phonetics

import "unicode"

// StressInfo describes the stressed vowel of a line's last word.
// Position is a rune index into Word; Word is the lowercased last word.
type StressInfo struct {
	Vowel    rune
	Position int
	Word     string
}

// RhymeType classifies the stress of this word.
func (s *StressInfo) RhymeType() RhymeType {
	return RhymeTypeByStress(s.Position, len([]rune(s.Word)))
}

// StressPattern determines the stressed vowel of the last word of a line.
// The stress dictionary is consulted first; for unknown words the
// second-to-last vowel is assumed stressed (the sole vowel when the word has
// only one). Returns nil when the line has no words or the word has no
// vowels.
func StressPattern(line string) *StressInfo {
	word, ok := lastWord(line)
	if !ok {
		return nil
	}

	if info := dictLookup(word); info != nil {
		return info
	}

	// Heuristic: stress usually falls on the second-to-last syllable.
	type vowelPos struct {
		vowel    rune
		position int
	}
	var positions []vowelPos
	for i, r := range []rune(word) {
		if IsVowel(r) {
			positions = append(positions, vowelPos{r, i})
		}
	}

	switch {
	case len(positions) == 0:
		return nil
	case len(positions) >= 2:
		p := positions[len(positions)-2]
		return &StressInfo{Vowel: p.vowel, Position: p.position, Word: word}
	default:
		p := positions[0]
		return &StressInfo{Vowel: p.vowel, Position: p.position, Word: word}
	}
}

// dictLookup resolves a word against the stress dictionary. The marked
// stressed form carries one uppercase letter; a dictionary entry without an
// uppercase letter yields no match so the heuristic applies.
func dictLookup(word string) *StressInfo {
	dict, err := stressDict()
	if err != nil {
		return nil
	}
	stressed, ok := dict[word]
	if !ok {
		return nil
	}
	for i, r := range []rune(stressed) {
		if unicode.IsUpper(r) {
			return &StressInfo{Vowel: unicode.ToLower(r), Position: i, Word: word}
		}
	}
	return nil
}
