package morse

import "strings"

// Decoder turns a Morse string back into plain text.
type Decoder interface {
	Decode(morse string, cfg Config) (string, error)
}

// TextDecoder is the standard Decoder over the package dictionary.
type TextDecoder struct{}

// Decode splits on WordDelimiter, then on LetterDelimiter, and maps each
// token back through the dictionary. Decoded words are rejoined with a single
// plain space regardless of the configured word delimiter; the reference
// behavior is asymmetric with Encode on purpose.
func (TextDecoder) Decode(morse string, cfg Config) (string, error) {
	morse = strings.TrimSpace(morse)
	if morse == "" {
		return "", nil
	}
	words := strings.Split(morse, cfg.WordDelimiter)
	decoded := make([]string, 0, len(words))
	for _, word := range words {
		var b strings.Builder
		for _, tok := range strings.Split(word, cfg.LetterDelimiter) {
			ch, ok := CharFor(tok)
			if !ok {
				switch cfg.Unknown {
				case PolicyIgnore:
					continue
				case PolicyReplace:
					b.WriteString(cfg.Replacement)
					continue
				default:
					return "", UnknownTokenError{Token: tok}
				}
			}
			b.WriteRune(ch)
		}
		decoded = append(decoded, b.String())
	}
	return strings.Join(decoded, " "), nil
}
