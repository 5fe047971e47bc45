package morse

import (
	"fmt"
	"strings"
)

// Chart returns the full dictionary as a markdown reference, sectioned into
// letters, digits, and punctuation. Callers render it however they like.
func Chart() string {
	var b strings.Builder
	b.WriteString("# Morse Reference\n\n")

	b.WriteString("## Letters\n\n")
	writeChartTable(&b, runeRange('A', 'Z'))

	b.WriteString("\n## Digits\n\n")
	writeChartTable(&b, runeRange('0', '9'))

	b.WriteString("\n## Punctuation\n\n")
	writeChartTable(&b, Punctuation)

	return b.String()
}

func writeChartTable(b *strings.Builder, chars []rune) {
	b.WriteString("| Char | Code |\n|------|------|\n")
	for _, ch := range chars {
		tok, ok := MorseFor(ch)
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %c | `%s` |\n", ch, tok)
	}
}

func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for ch := lo; ch <= hi; ch++ {
		out = append(out, ch)
	}
	return out
}
