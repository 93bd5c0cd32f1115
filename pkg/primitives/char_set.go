package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// CharSet efficiently represents a set of lowercase letters using bit manipulation.
// It supports characters from 'a' (97) to 'z' (122), total of 26 characters.
// This fits perfectly in a uint32.
type CharSet struct {
	bits  uint32
	count int
}

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = maxChar - minChar + 1 // 26 characters
)

// NewCharSet creates a new empty character set.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// CharSetOf returns the set of lowercase letters used by s. Other characters are ignored.
func CharSetOf(s string) CharSet {
	c := NewCharSet()
	for _, r := range s {
		// Runes outside a..z are counted by LetterBag instead.
		_ = c.Add(r)
	}
	return *c
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}

	bitPos := uint(r - minChar)
	if c.bits&(1<<bitPos) == 0 {
		c.bits |= 1 << bitPos
		c.count = bits.OnesCount32(c.bits)
	}
	return nil
}

// ContainsAll reports whether every character of other is also in c.
func (c *CharSet) ContainsAll(other *CharSet) bool {
	return other.bits&^c.bits == 0
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// String returns a string representation of the set.
func (c *CharSet) String() string {
	if c.count == 0 {
		return "letters [] (0/26)"
	}

	var chars []string
	for i := range uint(numChars) {
		if c.bits&(1<<i) != 0 {
			chars = append(chars, fmt.Sprintf("'%c'", rune(minChar+i)))
		}
	}
	return fmt.Sprintf("letters [%s] (%d/%d)", strings.Join(chars, ", "), c.count, numChars)
}
