package morse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatorDelegates(t *testing.T) {
	tr := NewTranslator()
	cfg := DefaultConfig()

	enc, err := tr.Encode("sos", cfg)
	require.NoError(t, err)
	assert.Equal(t, "... --- ...", enc)

	dec, err := tr.Decode(enc, cfg)
	require.NoError(t, err)
	assert.Equal(t, "SOS", dec)
}

// shoutingEncoder appends an exclamation token to whatever the standard
// encoder produces. Stands in for any caller-supplied strategy.
type shoutingEncoder struct{}

func (shoutingEncoder) Encode(text string, cfg Config) (string, error) {
	out, err := TextEncoder{}.Encode(text, cfg)
	if err != nil {
		return "", err
	}
	bang, _ := MorseFor('!')
	return out + cfg.LetterDelimiter + bang, nil
}

type lowercaseDecoder struct{}

func (lowercaseDecoder) Decode(morse string, cfg Config) (string, error) {
	out, err := TextDecoder{}.Decode(morse, cfg)
	return strings.ToLower(out), err
}

func TestTranslatorCustomStrategies(t *testing.T) {
	tr := NewTranslator(WithEncoder(shoutingEncoder{}), WithDecoder(lowercaseDecoder{}))
	cfg := DefaultConfig()

	enc, err := tr.Encode("hi", cfg)
	require.NoError(t, err)
	assert.Equal(t, ".... .. -.-.--", enc)

	dec, err := tr.Decode(".... ..", cfg)
	require.NoError(t, err)
	assert.Equal(t, "hi", dec)
}
