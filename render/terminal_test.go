package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanaki-93/lsr/model"
)

func TestTerminalWidth_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, 80, TerminalWidth(f, 80))
}

func TestLineWidth(t *testing.T) {
	assert.Equal(t, 70, LineWidth(80, 10))
	assert.Equal(t, 80, LineWidth(80, 0))
	assert.Equal(t, 1, LineWidth(5, 10))
}

func TestParseColorMode(t *testing.T) {
	for input, want := range map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"Always": ColorAlways,
		"never":  ColorNever,
	} {
		got, err := ParseColorMode(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestScheme(t *testing.T) {
	always := NewScheme(ColorAlways)
	assert.Contains(t, always.Name(model.ColorDirectory).Sprint("dir"), "\x1b[")
	assert.NotEqual(t, always.Name(model.ColorDirectory), always.Name(model.ColorExecutable))

	never := NewScheme(ColorNever)
	for _, class := range []model.ColorClass{model.ColorFile, model.ColorDirectory, model.ColorExecutable, model.ColorOther} {
		assert.Equal(t, "name", never.Name(class).Sprint("name"))
	}
}
