package morse

import (
	"fmt"
	"sync"
)

// table is the ITU character → token mapping. Keys are uppercase only;
// callers fold case before lookup when they want case-insensitive behavior.
var table = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	'.': ".-.-.-", ',': "--..--", '?': "..--..", ':': "---...", ';': "-.-.-.",
	'!': "-.-.--", '-': "-....-", '/': "-..-.", '@': ".--.-.", '(': "-.--.",
	')': "-.--.-", '&': ".-...", '=': "-...-", '+': ".-.-.",
}

// Punctuation lists the supported non-alphanumeric characters in chart order.
var Punctuation = []rune{'.', ',', '?', ':', ';', '!', '-', '/', '@', '(', ')', '&', '=', '+'}

var (
	reverseOnce sync.Once
	reverse     map[string]rune
)

// reverseTable inverts the forward table on first use. A duplicate token is a
// programming error in the table itself, so it fails fatally rather than
// surfacing to callers.
func reverseTable() map[string]rune {
	reverseOnce.Do(func() {
		rev := make(map[string]rune, len(table))
		for ch, tok := range table {
			if prev, dup := rev[tok]; dup {
				panic(fmt.Sprintf("morse: token %q maps to both %q and %q", tok, prev, ch))
			}
			rev[tok] = ch
		}
		reverse = rev
	})
	return reverse
}

// MorseFor returns the token for an exact character, or false when the
// character is outside the supported set.
func MorseFor(ch rune) (string, bool) {
	tok, ok := table[ch]
	return tok, ok
}

// CharFor returns the character for an exact token, or false when no entry
// matches. Only exact matches count; surrounding whitespace is significant.
func CharFor(token string) (rune, bool) {
	ch, ok := reverseTable()[token]
	return ch, ok
}

// Size reports the number of dictionary entries.
func Size() int { return len(table) }
