package poem

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/verse-generator/internal/llm"
	"github.com/jonathan/verse-generator/internal/phonetics"
)

// scriptedGenerator answers first-line prompts with a fixed opening and
// rotates through canned continuations otherwise.
type scriptedGenerator struct {
	firstLine string
	rotation  []string
	next      int
	calls     int
}

func (g *scriptedGenerator) GenerateLine(_ context.Context, prompt string, _ llm.SamplingParams) (string, error) {
	g.calls++
	if strings.HasPrefix(prompt, "Напиши") {
		return g.firstLine, nil
	}
	line := g.rotation[g.next%len(g.rotation)]
	g.next++
	return line, nil
}

func (g *scriptedGenerator) Close() error { return nil }

// brokenGenerator always returns structurally invalid text.
type brokenGenerator struct {
	calls int
}

func (g *brokenGenerator) GenerateLine(_ context.Context, _ string, _ llm.SamplingParams) (string, error) {
	g.calls++
	return "1234 broken output 5678", nil
}

func (g *brokenGenerator) Close() error { return nil }

func TestCompose_CompleteWithinOneAttempt(t *testing.T) {
	// Every continuation ends in a dictionary word with masculine stress,
	// two syllables and an а/я rhyme vowel, matching the opening line.
	gen := &scriptedGenerator{
		firstLine: "Приходит снова тёплая весна",
		rotation: []string{
			"Шумит и зеленеет трава",
			"Бежит с пригорка вниз река",
			"Вдали желтеют заливные луга",
		},
	}

	var events []ProgressEvent
	orchestrator, err := New(Options{
		Client:     gen,
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	result, err := orchestrator.Compose(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Complete)
	assert.Equal(t, 0, result.EmptySlots())
	assert.Equal(t, "1-2 и 3-4", result.SchemeName)
	assert.Equal(t, "Приходит снова тёплая весна", result.Lines[0])
	assert.NotEmpty(t, result.RunID)

	// Line 2 rhymes with line 1 in the а/я group.
	vowel, ok := phonetics.RhymeVowel(result.Lines[1])
	require.True(t, ok)
	assert.Contains(t, []rune{'а', 'я'}, vowel)

	// The first line's stress profile was cached on the result.
	require.NotNil(t, result.Stress)
	assert.Equal(t, phonetics.Masculine, result.Stress.RhymeType())
	assert.Equal(t, 2, result.Syllables)

	// Line 4 rhymes with line 3.
	v3, ok := phonetics.RhymeVowel(result.Lines[3])
	require.True(t, ok)
	v2, ok := phonetics.RhymeVowel(result.Lines[2])
	require.True(t, ok)
	assert.True(t, phonetics.CheckRhyme(v2, v3))

	// One outer attempt, four accepted lines.
	var attempts, lines int
	for _, e := range events {
		switch e.Stage {
		case "attempt":
			attempts++
		case "line":
			lines++
		}
	}
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 4, lines)
}

func TestCompose_AllSlotsEmptyAfterBudget(t *testing.T) {
	gen := &brokenGenerator{}

	orchestrator, err := New(Options{Client: gen})
	require.NoError(t, err)

	result, err := orchestrator.Compose(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Complete)
	assert.Equal(t, LineCount, result.EmptySlots())
	for _, line := range result.Lines {
		assert.Empty(t, line)
	}

	// 8 poem attempts x 4 lines x (25 sampler draws + 1 relaxed fallback).
	assert.Equal(t, 8*4*26, gen.calls)
}

// fallbackGenerator fails every sampler draw and answers only the relaxed
// fallback call of each line.
type fallbackGenerator struct {
	lines []string
	calls int
}

func (g *fallbackGenerator) GenerateLine(_ context.Context, _ string, _ llm.SamplingParams) (string, error) {
	g.calls++
	// 26th call per line slot is the relaxed fallback.
	if g.calls%26 == 0 {
		return g.lines[(g.calls/26-1)%len(g.lines)], nil
	}
	return "9999", nil
}

func (g *fallbackGenerator) Close() error { return nil }

func TestCompose_RelaxedFallbackFillsSlots(t *testing.T) {
	gen := &fallbackGenerator{
		lines: []string{
			"Тихо шепчет весенняя листва",
			"Сверкает на лугу роса",
			"Поёт в кустах ночная птица",
			"Звенит ручей в тени столица",
		},
	}

	orchestrator, err := New(Options{Client: gen})
	require.NoError(t, err)

	result, err := orchestrator.Compose(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Complete)
	assert.Equal(t, gen.lines[0], result.Lines[0])
	assert.Equal(t, gen.lines[1], result.Lines[1])
	assert.Equal(t, gen.lines[2], result.Lines[2])
	assert.Equal(t, gen.lines[3], result.Lines[3])
	assert.Equal(t, 4*26, gen.calls)
}

func TestCompose_ContextCancellation(t *testing.T) {
	gen := &brokenGenerator{}
	orchestrator, err := New(Options{Client: gen})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = orchestrator.Compose(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_RequiresClient(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_AppliesOptionBounds(t *testing.T) {
	gen := &brokenGenerator{}
	orchestrator, err := New(Options{
		Client:       gen,
		PoemAttempts: 2,
		LineAttempts: 3,
	})
	require.NoError(t, err)

	result, err := orchestrator.Compose(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Complete)

	// 2 poem attempts x 4 lines x (3 sampler draws + 1 relaxed fallback).
	assert.Equal(t, 2*4*4, gen.calls)
}
