package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	template, err := Get("generation.json", "first-line")
	require.NoError(t, err)
	assert.Contains(t, template, "первую строку")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("generation.json", "no-such-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "first-line")
	assert.Error(t, err)
}

func TestGet_CachesFile(t *testing.T) {
	first, err := Get("generation.json", "continue-rhymed")
	require.NoError(t, err)
	second, err := Get("generation.json", "continue-rhymed")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMustGet(t *testing.T) {
	assert.NotPanics(t, func() {
		template := MustGet("generation.json", "continue-plain")
		assert.NotEmpty(t, template)
	})
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("generation.json", "no-such-key")
	})
}

func TestFormat(t *testing.T) {
	template := MustGet("generation.json", "stress-requirement")
	result := Format(template, map[string]string{"RhymeType": "мужская"})
	assert.Equal(t, " с мужская рифмой", result)
}

func TestFormat_MultiplePlaceholders(t *testing.T) {
	result := Format("{{.A}} и {{.B}} и снова {{.A}}", map[string]string{
		"A": "раз",
		"B": "два",
	})
	assert.Equal(t, "раз и два и снова раз", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}
