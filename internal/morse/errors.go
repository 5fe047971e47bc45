package morse

import "fmt"

// UnknownCharError reports a character with no Morse token during encoding.
type UnknownCharError struct {
	Char rune
}

func (e UnknownCharError) Error() string {
	return fmt.Sprintf("morse: no token for character %q", e.Char)
}

// UnknownTokenError reports a token with no character during decoding.
type UnknownTokenError struct {
	Token string
}

func (e UnknownTokenError) Error() string {
	return fmt.Sprintf("morse: no character for token %q", e.Token)
}
