package phonetics

// vowelGroups is the fixed partition of vowels into rhyme-compatible pairs.
// Every vowel maps to exactly one group; the table is symmetric.
var vowelGroups = map[rune][]rune{
	'а': {'а', 'я'},
	'я': {'а', 'я'},
	'о': {'о', 'ё'},
	'ё': {'о', 'ё'},
	'у': {'у', 'ю'},
	'ю': {'у', 'ю'},
	'ы': {'ы', 'и'},
	'и': {'ы', 'и'},
	'э': {'э', 'е'},
	'е': {'э', 'е'},
}

// groupDisplay renders each rhyme group for prompts and reports.
var groupDisplay = map[rune]string{
	'а': "а/я", 'я': "а/я",
	'о': "о/ё", 'ё': "о/ё",
	'у': "у/ю", 'ю': "у/ю",
	'ы': "ы/и", 'и': "ы/и",
	'э': "э/е", 'е': "э/е",
}

// RhymeVowel returns the last vowel of the last word of a line, the unit
// compared for rhyme matching. ok is false when the line has no words or the
// last word has no vowels.
func RhymeVowel(line string) (rune, bool) {
	word, found := lastWord(line)
	if !found {
		return 0, false
	}
	runes := []rune(word)
	for i := len(runes) - 1; i >= 0; i-- {
		if IsVowel(runes[i]) {
			return runes[i], true
		}
	}
	return 0, false
}

// VowelGroup returns the set of vowels rhyme-compatible with v.
// A vowel outside the table maps to the singleton group containing itself.
func VowelGroup(v rune) []rune {
	if group, ok := vowelGroups[v]; ok {
		return group
	}
	return []rune{v}
}

// CheckRhyme reports whether candidate rhymes with target. Either vowel
// being absent (zero) fails the check.
func CheckRhyme(target, candidate rune) bool {
	if target == 0 || candidate == 0 {
		return false
	}
	for _, v := range VowelGroup(target) {
		if v == candidate {
			return true
		}
	}
	return false
}

// GroupDisplay formats the rhyme group of v for human-readable output,
// e.g. "а/я". Vowels without a group render as themselves.
func GroupDisplay(v rune) string {
	if s, ok := groupDisplay[v]; ok {
		return s
	}
	return string(v)
}
