package eew

import (
	"strings"

	"golang.org/x/text/width"
)

/* Text layout helpers */

// DisplayWidth returns the number of terminal cells needed to display the given text.
// Wide and fullwidth characters (e.g. Kanji, Kana) take two cells, all others one.
func DisplayWidth(s string) int {
	result := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			result += 2
		default:
			result++
		}
	}
	return result
}

// PadRight appends spaces to the given text until it fills the given number of terminal cells.
// Text that is already wider is returned unchanged.
func PadRight(s string, cells int) string {
	missing := cells - DisplayWidth(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}
