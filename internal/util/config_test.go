package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/morse-tui/internal/morse"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "catppuccin", cfg.Theme)
	assert.Equal(t, "error", cfg.Policy)
	assert.Equal(t, " / ", cfg.WordDelim)
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	t.Setenv("MORSE_UNKNOWN", "silently-drop")
	_, err := Load()
	require.Error(t, err)
}

func TestCodec(t *testing.T) {
	cfg := Config{
		Policy:      "replace",
		Replacement: "#",
		LetterDelim: "_",
		WordDelim:   "|",
	}
	codec := cfg.Codec()
	assert.Equal(t, morse.PolicyReplace, codec.Unknown)
	assert.Equal(t, "#", codec.Replacement)
	assert.Equal(t, "_", codec.LetterDelimiter)
	assert.Equal(t, "|", codec.WordDelimiter)
}
