package morse

import (
	"strings"
	"unicode/utf8"
)

// Encoder turns plain text into a Morse string.
type Encoder interface {
	Encode(text string, cfg Config) (string, error)
}

// TextEncoder is the standard Encoder over the package dictionary.
type TextEncoder struct{}

// Encode transcodes text word by word. Words are runs of non-whitespace;
// surrounding whitespace is dropped. The call fails atomically: under
// PolicyError no partial result is returned.
func (TextEncoder) Encode(text string, cfg Config) (string, error) {
	if !cfg.PreserveCase {
		text = strings.ToUpper(text)
	}
	words := strings.Fields(text)
	encoded := make([]string, 0, len(words))
	for _, word := range words {
		tokens := make([]string, 0, utf8.RuneCountInString(word))
		for _, ch := range word {
			tok, ok := MorseFor(ch)
			if !ok {
				switch cfg.Unknown {
				case PolicyIgnore:
					continue
				case PolicyReplace:
					tok = cfg.Replacement
				default:
					return "", UnknownCharError{Char: ch}
				}
			}
			tokens = append(tokens, tok)
		}
		encoded = append(encoded, strings.Join(tokens, cfg.LetterDelimiter))
	}
	return strings.Join(encoded, cfg.WordDelimiter), nil
}
