package morse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		morse string
		opts  []Option
		want  string
	}{
		{
			name:  "hello world default delimiters",
			morse: ".... . .-.. .-.. --- / .-- --- .-. .-.. -..",
			want:  "HELLO WORLD",
		},
		{
			name:  "empty input",
			morse: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			morse: "  \t ",
			want:  "",
		},
		{
			name:  "surrounding whitespace trimmed",
			morse: "  ... --- ...  ",
			want:  "SOS",
		},
		{
			name:  "digits and punctuation",
			morse: "--... ...-- --..-- / --- -.- ..--..",
			want:  "73, OK?",
		},
		{
			name:  "ignore drops unknown tokens",
			morse: ".- .-.-.-.-.- -...",
			opts:  []Option{WithPolicy(PolicyIgnore)},
			want:  "AB",
		},
		{
			name:  "replace substitutes a literal character",
			morse: ".- .-.-.-.-.- -...",
			opts:  []Option{WithPolicy(PolicyReplace)},
			want:  "A?B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.morse, DefaultConfig(tt.opts...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_UnknownTokenError(t *testing.T) {
	_, err := Decode(".- ...---... -...", DefaultConfig())
	require.Error(t, err)
	var ute UnknownTokenError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "...---...", ute.Token)
}

// Decoded words always rejoin with a plain space, even when the configured
// word delimiter is something else entirely.
func TestDecode_PlainSpaceRejoin(t *testing.T) {
	cfg := DefaultConfig(WithWordDelimiter("|"))
	got, err := Decode(".... ..|-.-- ---", cfg)
	require.NoError(t, err)
	assert.Equal(t, "HI YO", got)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"SOS",
		"Hello World",
		"the quick brown fox jumps over the lazy dog 0123456789",
		"calling @noon: bring (spare) fuses + wire, ok?",
	}
	for _, in := range inputs {
		for _, policy := range AllPolicies {
			cfg := DefaultConfig(WithPolicy(policy))
			enc, err := Encode(in, cfg)
			require.NoError(t, err, "encode %q", in)
			dec, err := Decode(enc, cfg)
			require.NoError(t, err, "decode %q", enc)
			// Encoding folds case and collapses whitespace runs.
			want, err := Encode(dec, cfg)
			require.NoError(t, err)
			assert.Equal(t, enc, want, "round trip drifted for %q", in)
		}
	}
}

func TestRoundTrip_CustomDelimiters(t *testing.T) {
	cfg := DefaultConfig(WithLetterDelimiter("_"), WithWordDelimiter(" // "))
	enc, err := Encode("ok go", cfg)
	require.NoError(t, err)
	assert.Equal(t, "---_-.- // --._---", enc)
	dec, err := Decode(enc, cfg)
	require.NoError(t, err)
	assert.Equal(t, "OK GO", dec)
}
