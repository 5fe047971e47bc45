// Package morse converts plain text to Morse code and back. The dictionary is
// a fixed bijection between uppercase characters and dot/dash tokens; encode
// and decode are pure passes over it, parameterized by a Config that picks
// delimiters and the unknown-symbol policy. Everything here is safe for
// concurrent use.
package morse

// Translator composes one Encoder and one Decoder behind a single value.
// Both default to the standard dictionary-backed implementations and can be
// swapped for custom strategies without touching call sites.
type Translator struct {
	enc Encoder
	dec Decoder
}

// TranslatorOption swaps a strategy on a Translator under construction.
type TranslatorOption func(*Translator)

func WithEncoder(e Encoder) TranslatorOption { return func(t *Translator) { t.enc = e } }
func WithDecoder(d Decoder) TranslatorOption { return func(t *Translator) { t.dec = d } }

func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{enc: TextEncoder{}, dec: TextDecoder{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Translator) Encode(text string, cfg Config) (string, error) {
	return t.enc.Encode(text, cfg)
}

func (t *Translator) Decode(morse string, cfg Config) (string, error) {
	return t.dec.Decode(morse, cfg)
}

// Encode transcodes text with the standard encoder.
func Encode(text string, cfg Config) (string, error) {
	return TextEncoder{}.Encode(text, cfg)
}

// Decode transcodes a Morse string with the standard decoder.
func Decode(morse string, cfg Config) (string, error) {
	return TextDecoder{}.Decode(morse, cfg)
}
