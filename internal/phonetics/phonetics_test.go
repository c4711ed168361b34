package phonetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected int
	}{
		{"Two syllables", "весна", 2},
		{"Empty word", "", 0},
		{"No vowels", "вкр", 0},
		{"Single vowel", "дом", 1},
		{"Uppercase input", "ВЕСНА", 2},
		{"Three syllables", "молоко", 3},
		{"Yo counts as vowel", "растёт", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSyllables(tt.word))
		})
	}
}

func TestCountSyllablesInLastWord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected int
	}{
		{"Normal line", "в саду растёт трава", 2},
		{"Empty line", "", 0},
		{"Whitespace only", "   ", 0},
		{"Single word", "молоко", 3},
		{"Last word without vowels", "поёт вкр", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSyllablesInLastWord(tt.line))
		})
	}
}
