// Package poem orchestrates four-line verse generation: rhyme-scheme
// selection, per-line target profiles, candidate sampling with a relaxed
// fallback, and a bounded outer retry loop.
package poem

import "math/rand"

// LineCount is the number of lines in a poem.
const LineCount = 4

// Scheme maps line indices to the earlier line they must rhyme with.
type Scheme interface {
	Name() string
	// Target returns the index of the line that line must rhyme with,
	// or false when the line rhymes freely.
	Target(line int) (int, bool)
}

type pairScheme struct {
	name    string
	targets map[int]int
}

func (s pairScheme) Name() string { return s.name }

func (s pairScheme) Target(line int) (int, bool) {
	target, ok := s.targets[line]
	return target, ok
}

// classic pairs line 2 with line 1 and line 4 with line 3.
var classic = pairScheme{
	name:    "1-2 и 3-4",
	targets: map[int]int{1: 0, 3: 2},
}

// Schemes returns the registered rhyme schemes. Only the classic scheme is
// defined today; the registry keeps scheme selection pluggable.
func Schemes() []Scheme {
	return []Scheme{classic}
}

// pickScheme selects a scheme at random from the registry.
func pickScheme(schemes []Scheme) Scheme {
	return schemes[rand.Intn(len(schemes))]
}
