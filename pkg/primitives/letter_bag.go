package primitives

import (
	"maps"
	"slices"
	"strings"
)

// LetterBag is a multiset of the runes in a phrase, with spaces ignored.
//
// Lowercase ASCII letters are kept in a fixed array of counters; anything else (digits,
// apostrophes, non-ASCII letters) is passed through into a small map that stays nil for the
// common case. A LetterBag is a value: Minus returns a new bag and never modifies its receiver,
// so a bag can be handed down a recursion without copying by the caller.
type LetterBag struct {
	counts [numChars]int
	other  map[rune]int
	size   int
}

// NewLetterBag counts the runes of s, skipping spaces.
func NewLetterBag(s string) LetterBag {
	var b LetterBag
	for _, r := range s {
		b.add(r, 1)
	}
	return b
}

func (b *LetterBag) add(r rune, n int) {
	switch {
	case r == ' ':
		return
	case r >= minChar && r <= maxChar:
		b.counts[r-minChar] += n
	default:
		if b.other == nil {
			b.other = make(map[rune]int)
		}
		b.other[r] += n
	}
	b.size += n
}

func (b LetterBag) count(r rune) int {
	if r >= minChar && r <= maxChar {
		return b.counts[r-minChar]
	}
	return b.other[r]
}

// Len returns the number of runes in the bag, counting repeats.
func (b LetterBag) Len() int {
	return b.size
}

// Empty reports whether no runes remain.
func (b LetterBag) Empty() bool {
	return b.size == 0
}

// Contains reports whether every rune of sub is present in b with at least the same multiplicity.
func (b LetterBag) Contains(sub LetterBag) bool {
	if sub.size > b.size {
		return false
	}
	for i, n := range sub.counts {
		if n > b.counts[i] {
			return false
		}
	}
	for r, n := range sub.other {
		if n > b.other[r] {
			return false
		}
	}
	return true
}

// Equal reports whether b and o hold exactly the same runes with the same multiplicities.
func (b LetterBag) Equal(o LetterBag) bool {
	if b.size != o.size || b.counts != o.counts {
		return false
	}
	if len(b.other) != len(o.other) {
		return false
	}
	for r, n := range b.other {
		if o.other[r] != n {
			return false
		}
	}
	return true
}

// Minus returns the bag left after removing sub's runes from b.
//
// Runes of sub that b does not have are skipped, never driving a counter below zero.
func (b LetterBag) Minus(sub LetterBag) LetterBag {
	out := LetterBag{counts: b.counts, size: b.size}
	for i, n := range sub.counts {
		taken := min(n, out.counts[i])
		out.counts[i] -= taken
		out.size -= taken
	}
	if len(b.other) > 0 {
		out.other = maps.Clone(b.other)
		for r, n := range sub.other {
			taken := min(n, out.other[r])
			if taken == 0 {
				continue
			}
			out.other[r] -= taken
			out.size -= taken
			if out.other[r] == 0 {
				delete(out.other, r)
			}
		}
	}
	return out
}

// CharSet returns the set of lowercase letters that have a non-zero count.
func (b LetterBag) CharSet() CharSet {
	var c CharSet
	for i, n := range b.counts {
		if n > 0 {
			c.bits |= 1 << uint(i)
			c.count++
		}
	}
	return c
}

// String returns the bag's runes in sorted order, e.g. "aelpp" for "apple".
func (b LetterBag) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i, n := range b.counts {
		for range n {
			sb.WriteRune(rune(minChar + i))
		}
	}
	others := slices.Sorted(maps.Keys(b.other))
	for _, r := range others {
		for range b.other[r] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
