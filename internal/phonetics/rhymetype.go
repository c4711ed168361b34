package phonetics

// RhymeType classifies a rhyme by the distance of the stressed vowel from
// the end of the word.
type RhymeType int

// Rhyme types, from stress on the last syllable outward.
const (
	Masculine RhymeType = iota
	Feminine
	Dactylic
	Hyperdactylic
)

// rhymeTypeNames are the Russian names used in prompts and reports.
var rhymeTypeNames = map[RhymeType]string{
	Masculine:     "мужская",
	Feminine:      "женская",
	Dactylic:      "дактилическая",
	Hyperdactylic: "гипердактилическая",
}

func (t RhymeType) String() string {
	if name, ok := rhymeTypeNames[t]; ok {
		return name
	}
	return "неизвестная"
}

// RhymeTypeByStress classifies a rhyme by the stressed vowel position within
// a word of wordLen runes. Checks run in order; the first match wins.
func RhymeTypeByStress(position, wordLen int) RhymeType {
	switch {
	case position == wordLen-1:
		return Masculine
	case position >= wordLen-2:
		return Feminine
	case position >= wordLen-3:
		return Dactylic
	default:
		return Hyperdactylic
	}
}
