package primitives

import (
	"strings"
	"unicode/utf8"
)

// SubtractWord removes, for each rune of word in order, the first occurrence of that rune from
// remaining and returns what is left.
//
// The caller must have checked that word fits in remaining (see Reduce). Runes of word that are
// missing from remaining are skipped silently.
func SubtractWord(remaining, word string) string {
	for _, r := range word {
		if i := strings.IndexRune(remaining, r); i >= 0 {
			_, size := utf8.DecodeRuneInString(remaining[i:])
			remaining = remaining[:i] + remaining[i+size:]
		}
	}
	return remaining
}

// IsAnagram reports whether a and b use exactly the same runes, ignoring spaces.
// No case folding is done; callers lowercase their input first.
func IsAnagram(a, b string) bool {
	a = strings.ReplaceAll(a, " ", "")
	b = strings.ReplaceAll(b, " ", "")
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return false
	}
	return NewLetterBag(a).Equal(NewLetterBag(b))
}
